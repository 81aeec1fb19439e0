package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sprintcap/internal/domain"
)

// ProjectInspectData holds all data needed to render a project inspect view.
type ProjectInspectData struct {
	Project *domain.Project
	Tasks   []*domain.Task
	Stories []*domain.UserStory
	Sprints []*domain.Sprint
}

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"KEY", "NAME", "STATUS", "UPDATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			StylePurple.Render(p.DisplayID()),
			Bold(p.Name),
			ProjectStatusPill(p.Status),
			Dim(HumanTimestamp(p.UpdatedAt)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Projects", table)
}

// FormatProjectInspect renders a styled project inspect card with side-by-side layout.
func FormatProjectInspect(data ProjectInspectData) string {
	leftPanel := buildMetadataPanel(data.Project)
	rightPanel := buildWorkPanel(data)

	spacing := "    "
	combined := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, spacing, rightPanel)

	return RenderBox("", combined)
}

// buildMetadataPanel creates the left panel with project metadata.
func buildMetadataPanel(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(StylePurple.Render(p.Key) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS "), ProjectStatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UUID   "), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), StyleFg.Render(HumanDate(p.CreatedAt))))

	if p.ArchivedAt != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ARCHVD "), HumanTimestamp(*p.ArchivedAt)))
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), HumanTimestamp(p.UpdatedAt)))

	return lipgloss.NewStyle().Width(40).Render(b.String())
}

// buildWorkPanel creates the right panel summarizing the project's work.
func buildWorkPanel(data ProjectInspectData) string {
	var b strings.Builder

	scheduled := 0
	for _, t := range data.Tasks {
		if t.Scheduled() {
			scheduled++
		}
	}
	b.WriteString(Header("Work") + "\n")
	b.WriteString(fmt.Sprintf("%s %d %s\n", StyleFg.Render("Tasks:"), len(data.Tasks),
		Dim(fmt.Sprintf("(%d scheduled)", scheduled))))

	backlog := 0
	points := 0
	for _, s := range data.Stories {
		points += s.Points
		if s.SprintID == nil {
			backlog++
		}
	}
	b.WriteString(fmt.Sprintf("%s %d %s\n", StyleFg.Render("Stories:"), len(data.Stories),
		Dim(fmt.Sprintf("(%d in backlog, %d pts total)", backlog, points))))

	if len(data.Sprints) > 0 {
		b.WriteString("\n" + Header("Sprints") + "\n")
		for _, sp := range data.Sprints {
			b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
				SprintStatusPill(sp.Status),
				Bold(sp.Name),
				Dim(sp.StartDate.Format("Jan 2")+" – "+sp.EndDate.Format("Jan 2")),
				Dim(fmt.Sprintf("%dd", sp.Days()))))
		}
	}

	return b.String()
}
