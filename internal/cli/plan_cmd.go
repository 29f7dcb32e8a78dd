package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect weekly plans",
	}

	var (
		runPerson string
		dryRun    bool
		nowStr    string
	)
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Allocate the backlog across the weekly routine",
		Long: `Run the allocator for a member. Each run is authoritative: existing
placements are recomputed from scratch. Use --dry-run to preview without
persisting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := a.Persons.Resolve(ctx, runPerson)
			if err != nil {
				return err
			}

			req := app.PlanRequest{PersonID: p.ID, DryRun: dryRun}
			if nowStr != "" {
				now, err := time.Parse("2006-01-02", nowStr)
				if err != nil {
					return fmt.Errorf("invalid --now %q (expected YYYY-MM-DD)", nowStr)
				}
				req.Now = &now
			}

			resp, err := a.Plans.Plan(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(p.Name, resp))
			return nil
		},
	}
	runCmd.Flags().StringVar(&runPerson, "person", "", "Household member")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the plan but do not persist it")
	runCmd.Flags().StringVar(&nowStr, "now", "", "Override the reference date (YYYY-MM-DD)")
	_ = runCmd.MarkFlagRequired("person")

	var showPerson string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the persisted weekly plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := a.Persons.Resolve(ctx, showPerson)
			if err != nil {
				return err
			}
			placements, err := a.Plans.Week(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeek(p.Name, placements))
			return nil
		},
	}
	showCmd.Flags().StringVar(&showPerson, "person", "", "Household member")
	_ = showCmd.MarkFlagRequired("person")

	cmd.AddCommand(runCmd, showCmd)
	return cmd
}
