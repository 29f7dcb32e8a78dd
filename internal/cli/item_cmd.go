package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/cli/formatter"
	"github.com/daneverett/homeslate/internal/intake"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	var (
		person     string
		desc       string
		subject    string
		itemType   string
		source     string
		due        string
		duration   int
		priority   string
		difficulty string
		points     int
		portable   bool
	)

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Capture a work item (intake fills in anything omitted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, person)
			if err != nil {
				return err
			}

			raw := intake.RawItem{
				Title:          args[0],
				Description:    desc,
				Subject:        subject,
				Type:           itemType,
				Source:         source,
				PriorityHint:   priority,
				DifficultyHint: difficulty,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due %q (expected YYYY-MM-DD)", due)
				}
				raw.DueDate = &d
			}
			if cmd.Flags().Changed("minutes") {
				raw.DurationMin = &duration
			}
			if cmd.Flags().Changed("points") {
				raw.PointValue = &points
			}
			if cmd.Flags().Changed("portable") {
				raw.Portable = &portable
			}

			item, err := app.Items.Add(ctx, p.ID, raw)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatItemAdded(item))
			return nil
		},
	}
	addCmd.Flags().StringVar(&person, "person", "", "Household member the item belongs to")
	addCmd.Flags().StringVar(&desc, "desc", "", "Longer description")
	addCmd.Flags().StringVar(&subject, "subject", "", "Subject (Math, History, ...)")
	addCmd.Flags().StringVar(&itemType, "type", "", "Item type (assignment, quiz, chore, ...)")
	addCmd.Flags().StringVar(&source, "source", "", "Where the item came from")
	addCmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&duration, "minutes", 0, "Estimated duration in minutes")
	addCmd.Flags().StringVar(&priority, "priority", "", "Priority hint (critical, important, flexible)")
	addCmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty hint (easy, medium, hard)")
	addCmd.Flags().IntVar(&points, "points", 0, "Point value")
	addCmd.Flags().BoolVar(&portable, "portable", false, "Item can move between slots and places")
	_ = addCmd.MarkFlagRequired("person")

	var listPerson string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a member's work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, listPerson)
			if err != nil {
				return err
			}
			items, err := app.Items.List(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatItemList(p.Name, items))
			return nil
		},
	}
	listCmd.Flags().StringVar(&listPerson, "person", "", "Household member")
	_ = listCmd.MarkFlagRequired("person")

	var backlogPerson string
	backlogCmd := &cobra.Command{
		Use:   "backlog",
		Short: "Show the schedulable backlog in placement order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Persons.Resolve(ctx, backlogPerson)
			if err != nil {
				return err
			}
			backlog, err := app.Items.Backlog(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBacklog(p.Name, backlog))
			return nil
		},
	}
	backlogCmd.Flags().StringVar(&backlogPerson, "person", "", "Household member")
	_ = backlogCmd.MarkFlagRequired("person")

	doneCmd := &cobra.Command{
		Use:   "done <item-id>",
		Short: "Mark a work item done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Items.Done(context.Background(), args[0])
		},
	}

	skipCmd := &cobra.Command{
		Use:   "skip <item-id>",
		Short: "Skip a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Items.Skip(context.Background(), args[0])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Items.Remove(context.Background(), args[0])
		},
	}

	cmd.AddCommand(addCmd, listCmd, backlogCmd, doneCmd, skipCmd, rmCmd)
	return cmd
}
