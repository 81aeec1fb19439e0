package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sprintcap/internal/capacity"
	"sprintcap/internal/cli/formatter"
	"sprintcap/internal/domain"
)

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints and their point capacity",
	}

	cmd.AddCommand(
		newSprintAddCmd(app),
		newSprintListCmd(app),
		newSprintUpdateCmd(app),
		newSprintStatusCmd(app),
		newSprintCapacityCmd(app),
	)

	return cmd
}

func newSprintAddCmd(app *App) *cobra.Command {
	var project, name, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			window, err := capacity.ParseWindow(start, end)
			if err != nil {
				return err
			}

			sp := &domain.Sprint{
				ProjectID: projectID,
				Name:      name,
				StartDate: window.Start,
				EndDate:   window.End,
			}

			if err := app.Sprints.Create(ctx, sp); err != nil {
				return err
			}

			fmt.Printf("Created sprint %s (%d days, %d pts capacity)\n",
				sp.Name, sp.Days(), sp.Days()*int(capacity.DefaultDailyStoryPoints))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSprintListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			sprints, err := app.Sprints.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(sprints) == 0 {
				fmt.Println("No sprints found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatSprintList(sprints))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSprintUpdateCmd(app *App) *cobra.Command {
	var project, start, end string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Move a sprint's window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			sprintID, err := resolveSprintID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			window, err := capacity.ParseWindow(start, end)
			if err != nil {
				return err
			}

			if err := app.Sprints.UpdateWindow(ctx, sprintID, window.Start, window.End); err != nil {
				return err
			}

			fmt.Printf("Sprint moved to %s through %s.\n", start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSprintStatusCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set sprint status (planned, active, completed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			sprintID, err := resolveSprintID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Sprints.SetStatus(ctx, sprintID, domain.SprintStatus(args[1])); err != nil {
				return err
			}

			fmt.Printf("Sprint status set to %s.\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSprintCapacityCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "capacity ID",
		Short: "Show a sprint's point capacity and commitment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			sprintID, err := resolveSprintID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			report, err := app.Sprints.CapacityReport(ctx, sprintID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSprintCapacity(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project key or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
