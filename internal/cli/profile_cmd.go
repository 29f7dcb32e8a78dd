package cli

import (
	"context"
	"fmt"

	"github.com/daneverett/homeslate/internal/cli/formatter"
	"github.com/daneverett/homeslate/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage capacity profiles",
	}

	var showPerson string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a member's capacity profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, showPerson)
			if err != nil {
				return err
			}
			profile, err := app.Profiles.Get(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(p.Name, profile))
			return nil
		},
	}
	showCmd.Flags().StringVar(&showPerson, "person", "", "Household member")
	_ = showCmd.MarkFlagRequired("person")

	var (
		setPerson    string
		dailyMax     int
		subjectMax   int
		distribution string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set a member's daily capacity ceilings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, setPerson)
			if err != nil {
				return err
			}
			profile, err := app.Profiles.Get(ctx, p.ID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("daily-max") {
				profile.DailyMaxMin = dailyMax
			}
			if cmd.Flags().Changed("subject-max") {
				profile.SubjectDailyMaxMin = subjectMax
			}
			if cmd.Flags().Changed("distribution") {
				profile.Distribution = domain.DistributionPreference(distribution)
			}
			if err := app.Profiles.Set(ctx, profile); err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(p.Name, profile))
			return nil
		},
	}
	setCmd.Flags().StringVar(&setPerson, "person", "", "Household member")
	setCmd.Flags().IntVar(&dailyMax, "daily-max", 0, "Daily maximum in minutes")
	setCmd.Flags().IntVar(&subjectMax, "subject-max", 0, "Per-subject daily maximum in minutes")
	setCmd.Flags().StringVar(&distribution, "distribution", "", "Distribution preference (even, front_loaded, light_end)")
	_ = setCmd.MarkFlagRequired("person")

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}
