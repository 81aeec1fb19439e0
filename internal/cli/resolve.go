package cli

import (
	"context"
	"fmt"
	"strings"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	// 1. Exact key match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Key, input) {
			return p.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveByPrefix resolves an ID against a candidate set by exact match
// first, then unique prefix. Used for tasks, stories, and sprints, whose
// only identifiers are UUIDs.
func resolveByPrefix(input, entity string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", entity)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", entity, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", entity, input, len(matches))
	}
}

func resolveTaskID(ctx context.Context, app *App, projectID, input string) (string, error) {
	tasks, err := app.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveByPrefix(input, "task", ids)
}

func resolveSprintID(ctx context.Context, app *App, projectID, input string) (string, error) {
	sprints, err := app.Sprints.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	// Sprint names are handy on the command line; try those first.
	for _, sp := range sprints {
		if strings.EqualFold(sp.Name, input) {
			return sp.ID, nil
		}
	}

	ids := make([]string, len(sprints))
	for i, sp := range sprints {
		ids[i] = sp.ID
	}
	return resolveByPrefix(input, "sprint", ids)
}

func resolveStoryID(ctx context.Context, app *App, projectID, input string) (string, error) {
	stories, err := app.Stories.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(stories))
	for i, st := range stories {
		ids[i] = st.ID
	}
	return resolveByPrefix(input, "story", ids)
}
