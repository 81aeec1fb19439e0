package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sprintcap/internal/domain"
)

func story(title string, points int, status domain.StoryStatus) *domain.UserStory {
	now := time.Now().UTC()
	return &domain.UserStory{
		ID:        "12345678-aaaa-bbbb-cccc-1234567890ab",
		ProjectID: "p1",
		Title:     title,
		Points:    points,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFormatStoryList_ResolvesSprintNames(t *testing.T) {
	sprintID := "aaaa1111-2222-3333-4444-555566667777"
	assigned := story("Checkout flow", 8, domain.StoryTodo)
	assigned.SprintID = &sprintID
	stories := []*domain.UserStory{
		assigned,
		story("Dark mode", 3, domain.StoryBacklog),
	}

	out := FormatStoryList(stories, map[string]string{sprintID: "Sprint 7"})

	assert.Contains(t, out, "Checkout flow")
	assert.Contains(t, out, "Sprint 7")
	assert.Contains(t, out, "8 pts")
	assert.Contains(t, out, "backlog")
}

func TestFormatBoard_GroupsByColumn(t *testing.T) {
	stories := []*domain.UserStory{
		story("In flight", 5, domain.StoryInProgress),
		story("Waiting", 3, domain.StoryTodo),
		story("Shipped", 2, domain.StoryDone),
	}

	out := FormatBoard(stories)

	assert.Contains(t, out, "IN PROGRESS (1)")
	assert.Contains(t, out, "TODO (1)")
	assert.Contains(t, out, "DONE (1)")
	assert.Contains(t, out, "BACKLOG (0)")
	assert.Contains(t, out, "empty")
}
