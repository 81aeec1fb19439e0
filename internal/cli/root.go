package cli

import (
	"github.com/spf13/cobra"

	"sprintcap/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Sprints  service.SprintService
	Stories  service.StoryService
}

// NewRootCmd creates the top-level "sprintcap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sprintcap",
		Short: "Daily capacity and sprint planning for project boards",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newSprintCmd(app),
		newStoryCmd(app),
		newBoardCmd(app),
	)

	return root
}
