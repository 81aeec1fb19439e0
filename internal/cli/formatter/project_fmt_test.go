package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sprintcap/internal/domain"
)

func TestFormatProjectList_PrefersKey(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:        "12345678-aaaa-bbbb-cccc-1234567890ab",
			Key:       "BILL",
			Name:      "Billing Platform",
			Status:    domain.ProjectActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	out := FormatProjectList(projects)

	assert.Contains(t, out, "BILL")
	assert.Contains(t, out, "Billing Platform")
	assert.NotContains(t, out, "12345678")
}

func TestFormatProjectInspect_SummarizesWork(t *testing.T) {
	now := time.Now().UTC()
	est := 4.0
	due := now.AddDate(0, 0, 2)
	data := ProjectInspectData{
		Project: &domain.Project{
			ID:        "12345678-aaaa-bbbb-cccc-1234567890ab",
			Key:       "BILL",
			Name:      "Billing Platform",
			Status:    domain.ProjectActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Tasks: []*domain.Task{
			{ID: "t1", Title: "Scheduled", EstimatedHours: &est, DueDate: &due},
			{ID: "t2", Title: "Loose end"},
		},
		Stories: []*domain.UserStory{
			{ID: "s1", Title: "Backlog story", Points: 5},
		},
		Sprints: []*domain.Sprint{
			{
				ID:        "sp1",
				Name:      "Sprint 7",
				StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
				Status:    domain.SprintActive,
			},
		},
	}

	out := FormatProjectInspect(data)

	assert.Contains(t, out, "Billing Platform")
	assert.Contains(t, out, "(1 scheduled)")
	assert.Contains(t, out, "(1 in backlog, 5 pts total)")
	assert.Contains(t, out, "Sprint 7")
	assert.Contains(t, out, "14d")
}
