package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage household members",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a household member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Persons.Add(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List household members",
		RunE: func(cmd *cobra.Command, args []string) error {
			persons, err := app.Persons.List(context.Background())
			if err != nil {
				return err
			}
			if len(persons) == 0 {
				fmt.Println("No household members yet. Add one with: homeslate person add <name>")
				return nil
			}
			for _, p := range persons {
				fmt.Printf("%s  %s\n", p.ID, p.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}
