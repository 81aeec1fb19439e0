package formatter

import (
	"fmt"
	"strings"

	"sprintcap/internal/domain"
)

// FormatStoryList renders a styled story list inside a bordered box.
func FormatStoryList(stories []*domain.UserStory, sprintNames map[string]string) string {
	headers := []string{"ID", "TITLE", "PTS", "STATUS", "SPRINT"}
	rows := make([][]string, 0, len(stories))

	for _, st := range stories {
		sprint := Dim("backlog")
		if st.SprintID != nil {
			if name, ok := sprintNames[*st.SprintID]; ok {
				sprint = StyleBlue.Render(name)
			} else {
				sprint = TruncID(*st.SprintID)
			}
		}

		rows = append(rows, []string{
			TruncID(st.ID),
			Bold(st.Title),
			PointsBadge(st.Points),
			StoryStatusPill(st.Status),
			sprint,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Stories", table)
}

// FormatBoard renders stories as a kanban board, one section per status
// column in board order.
func FormatBoard(stories []*domain.UserStory) string {
	byStatus := make(map[domain.StoryStatus][]*domain.UserStory)
	for _, st := range stories {
		byStatus[st.Status] = append(byStatus[st.Status], st)
	}

	var b strings.Builder
	for i, col := range domain.BoardColumns {
		if i > 0 {
			b.WriteString("\n")
		}
		colStories := byStatus[col]
		b.WriteString(Header(fmt.Sprintf("%s (%d)", boardColumnName(col), len(colStories))) + "\n")
		if len(colStories) == 0 {
			b.WriteString(Dim("empty") + "\n")
			continue
		}
		for _, st := range colStories {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				TruncID(st.ID), Bold(st.Title), PointsBadge(st.Points)))
		}
	}

	return RenderBox("Board", strings.TrimRight(b.String(), "\n"))
}

func boardColumnName(s domain.StoryStatus) string {
	switch s {
	case domain.StoryBacklog:
		return "Backlog"
	case domain.StoryTodo:
		return "Todo"
	case domain.StoryInProgress:
		return "In Progress"
	case domain.StoryReview:
		return "Review"
	case domain.StoryDone:
		return "Done"
	default:
		return string(s)
	}
}
