package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"sprintcap/internal/cli"
	"sprintcap/internal/db"
	"sprintcap/internal/repository"
	"sprintcap/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.sprintcap/sprintcap.db
	dbPath := os.Getenv("SPRINTCAP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".sprintcap", "sprintcap.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Plain output when not writing to a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sprintRepo := repository.NewSQLiteSprintRepo(database)
	storyRepo := repository.NewSQLiteStoryRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Tasks:    service.NewTaskService(taskRepo, uow),
		Sprints:  service.NewSprintService(sprintRepo, storyRepo, uow),
		Stories:  service.NewStoryService(storyRepo, sprintRepo, uow),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
