package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daneverett/homeslate/internal/cli"
	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/guard"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/daneverett/homeslate/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.homeslate/homeslate.db
	dbPath := os.Getenv("HOMESLATE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".homeslate", "homeslate.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	personRepo := repository.NewSQLitePersonRepo(database)
	itemRepo := repository.NewSQLiteWorkItemRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	profileRepo := repository.NewSQLiteCapacityProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// One keyed guard shared by anything that mutates a person's week.
	planGuard := guard.New()

	var observers []service.UseCaseObserver
	if os.Getenv("HOMESLATE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Persons:  service.NewPersonService(personRepo),
		Items:    service.NewItemService(itemRepo, personRepo),
		Routines: service.NewRoutineService(personRepo, routineRepo, uow),
		Profiles: service.NewProfileService(profileRepo, personRepo),
		Plans:    service.NewPlanService(personRepo, itemRepo, routineRepo, profileRepo, uow, planGuard, observers...),
	}

	// Detect interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
