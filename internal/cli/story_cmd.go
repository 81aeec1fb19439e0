package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sprintcap/internal/cli/formatter"
	"sprintcap/internal/domain"
)

func newStoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Manage user stories and sprint assignment",
	}

	cmd.AddCommand(
		newStoryAddCmd(app),
		newStoryListCmd(app),
		newStoryUpdateCmd(app),
		newStoryAssignCmd(app),
		newStoryUnassignCmd(app),
		newStoryMoveCmd(app),
		newStoryRemoveCmd(app),
	)

	return cmd
}

func newStoryAddCmd(app *App) *cobra.Command {
	var project, title string
	var points int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new story",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			st := &domain.UserStory{
				ProjectID: projectID,
				Title:     title,
				Points:    points,
			}

			if err := app.Stories.Create(ctx, st); err != nil {
				return err
			}

			fmt.Printf("Created story %s (%d pts)\n", st.Title, st.Points)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Story title")
	cmd.Flags().IntVar(&points, "points", 0, "Story points (1, 2, 3, 5, 8, 13, 21)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func newStoryListCmd(app *App) *cobra.Command {
	var project, sprint string
	var backlog bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stories in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			var stories []*domain.UserStory
			switch {
			case backlog:
				stories, err = app.Stories.ListBacklog(ctx, projectID)
			case sprint != "":
				var sprintID string
				if sprintID, err = resolveSprintID(ctx, app, projectID, sprint); err != nil {
					return err
				}
				stories, err = app.Stories.ListBySprint(ctx, sprintID)
			default:
				stories, err = app.Stories.ListByProject(ctx, projectID)
			}
			if err != nil {
				return err
			}

			if len(stories) == 0 {
				fmt.Println("No stories found.")
				return nil
			}

			names := make(map[string]string)
			if sprints, err := app.Sprints.ListByProject(ctx, projectID); err == nil {
				for _, sp := range sprints {
					names[sp.ID] = sp.Name
				}
			}

			fmt.Printf("%s\n", formatter.FormatStoryList(stories, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&sprint, "sprint", "", "Only stories in this sprint")
	cmd.Flags().BoolVar(&backlog, "backlog", false, "Only unassigned stories")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStoryUpdateCmd(app *App) *cobra.Command {
	var project, title string
	var points int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			storyID, err := resolveStoryID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			st, err := app.Stories.GetByID(ctx, storyID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				st.Title = title
			}
			if cmd.Flags().Changed("points") {
				st.Points = points
			}

			if err := app.Stories.Update(ctx, st); err != nil {
				return err
			}

			fmt.Printf("Updated story %s\n", st.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&title, "title", "", "Story title")
	cmd.Flags().IntVar(&points, "points", 0, "Story points (1, 2, 3, 5, 8, 13, 21)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStoryAssignCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "assign STORY SPRINT",
		Short: "Assign a story to a sprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			storyID, err := resolveStoryID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			sprintID, err := resolveSprintID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Stories.AssignToSprint(ctx, storyID, sprintID); err != nil {
				return err
			}

			fmt.Println("Story assigned.")
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStoryUnassignCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "unassign ID",
		Short: "Return a story to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			storyID, err := resolveStoryID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Stories.RemoveFromSprint(ctx, storyID); err != nil {
				return err
			}

			fmt.Println("Story returned to backlog.")
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStoryMoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a story between board columns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			storyID, err := resolveStoryID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Stories.MoveStatus(ctx, storyID, domain.StoryStatus(args[1])); err != nil {
				return err
			}

			fmt.Printf("Story moved to %s.\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStoryRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			storyID, err := resolveStoryID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Stories.Delete(ctx, storyID); err != nil {
				return err
			}

			fmt.Println("Story deleted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
