package formatter

import (
	"fmt"
	"strings"
	"time"

	"sprintcap/internal/contract"
	"sprintcap/internal/domain"
)

// FormatTaskList renders a styled task list inside a bordered box.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "TITLE", "STATUS", "EST", "DUE"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		est := Dim("--")
		if t.EstimatedHours != nil {
			est = StyleFg.Render(HoursLabel(*t.EstimatedHours))
		}
		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}

		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			TaskStatusPill(t.Status),
			est,
			due,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Tasks", table)
}

// FormatScheduleCheck renders a daily-capacity validation verdict, including
// the day-by-day spillover breakdown when the requested day cannot hold the
// whole estimate.
func FormatScheduleCheck(check *contract.ScheduleCheck) string {
	var b strings.Builder

	if check.Valid {
		b.WriteString(StyleGreen.Render("✔ Fits") + "\n")
		b.WriteString(fmt.Sprintf("%s %s already booked on that day\n",
			Dim("Load:"), StyleFg.Render(HoursLabel(check.CurrentDayHours))))
	} else {
		b.WriteString(StyleRed.Render("✖ Does not fit") + "\n")
		b.WriteString(StyleYellow.Render(check.Reason) + "\n")
	}

	if len(check.Distribution) > 1 {
		b.WriteString("\n" + Header("Spillover") + "\n")
		for _, share := range check.Distribution {
			day, err := time.Parse("2006-01-02", share.Date)
			label := share.Date
			if err == nil {
				label = day.Format("Mon Jan 2")
			}
			b.WriteString(fmt.Sprintf("%s  %s\n",
				Dim(label), StyleFg.Render(HoursLabel(share.Hours))))
		}
		b.WriteString(Dim(fmt.Sprintf("%d days needed", check.DaysNeeded)) + "\n")
	}

	return RenderBox("Schedule Check", strings.TrimRight(b.String(), "\n"))
}
