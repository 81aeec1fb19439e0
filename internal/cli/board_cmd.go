package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sprintcap/internal/cli/formatter"
	"sprintcap/internal/domain"
)

func newBoardCmd(app *App) *cobra.Command {
	var project, sprint string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the story board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			var stories []*domain.UserStory
			if sprint != "" {
				var sprintID string
				if sprintID, err = resolveSprintID(ctx, app, projectID, sprint); err != nil {
					return err
				}
				stories, err = app.Stories.ListBySprint(ctx, sprintID)
			} else {
				stories, err = app.Stories.ListByProject(ctx, projectID)
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatBoard(stories))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&sprint, "sprint", "", "Only stories in this sprint")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
