package formatter

import (
	"fmt"
	"strings"

	"sprintcap/internal/contract"
	"sprintcap/internal/domain"
)

// FormatSprintList renders a styled sprint list inside a bordered box.
func FormatSprintList(sprints []*domain.Sprint) string {
	headers := []string{"ID", "NAME", "STATUS", "WINDOW", "DAYS"}
	rows := make([][]string, 0, len(sprints))

	for _, sp := range sprints {
		window := fmt.Sprintf("%s to %s",
			sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"))
		rows = append(rows, []string{
			TruncID(sp.ID),
			Bold(sp.Name),
			SprintStatusPill(sp.Status),
			StyleFg.Render(window),
			Dim(fmt.Sprintf("%d", sp.Days())),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Sprints", table)
}

// FormatSprintCapacity renders a capacity report card with a utilization bar.
func FormatSprintCapacity(report *contract.SprintCapacityReport) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(report.Name) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s to %s (%d days)",
		report.StartDate, report.EndDate, report.Days)) + "\n\n")

	b.WriteString(RenderCapacityBar(report.Utilization, 24) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CAPACITY "),
		StyleFg.Render(fmt.Sprintf("%d pts", report.TotalCapacity))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMMITTED"),
		StyleFg.Render(fmt.Sprintf("%d pts", report.UsedPoints))))

	if report.OverCapacity {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("OVER BY  "),
			StyleRed.Render(fmt.Sprintf("%d pts", -report.Remaining))))
		b.WriteString("\n" + StyleRed.Render("▲ Sprint is over capacity") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("REMAINING"),
			StyleGreen.Render(fmt.Sprintf("%d pts", report.Remaining))))
	}

	return RenderBox("Sprint Capacity", strings.TrimRight(b.String(), "\n"))
}
