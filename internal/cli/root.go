package cli

import (
	"github.com/daneverett/homeslate/internal/cli/formatter"
	"github.com/daneverett/homeslate/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Persons  service.PersonService
	Items    service.ItemService
	Routines service.RoutineService
	Profiles service.ProfileService
	Plans    service.PlanService

	// IsInteractive reports whether stdin is a terminal; set by main
	// and consulted before each command to pick styled or plain output.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "homeslate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "homeslate",
		Short: "Capacity-aware household week planner",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.IsInteractive != nil {
				formatter.SetInteractive(app.IsInteractive())
			}
		},
	}

	root.AddCommand(
		newPersonCmd(app),
		newItemCmd(app),
		newRoutineCmd(app),
		newProfileCmd(app),
		newPlanCmd(app),
	)

	return root
}
