package cli

import (
	"context"
	"fmt"

	"github.com/daneverett/homeslate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage weekly routine templates",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a routine document (YAML or JSON)",
		Long: `Import a routine document describing a member's weekly template.
The document replaces any existing routine for the member and may also
carry a capacity profile and an initial batch of work items.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Routines.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported routine for %s: %d blocks, %d items", res.Person.Name, res.BlockCount, res.ItemCount)
			if res.ProfileSet {
				fmt.Print(", capacity profile set")
			}
			fmt.Println()
			return nil
		},
	}

	var showPerson string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a member's weekly routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, showPerson)
			if err != nil {
				return err
			}
			blocks, err := app.Routines.Show(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoutine(p.Name, blocks))
			return nil
		},
	}
	showCmd.Flags().StringVar(&showPerson, "person", "", "Household member")
	_ = showCmd.MarkFlagRequired("person")

	cmd.AddCommand(importCmd, showCmd)
	return cmd
}
