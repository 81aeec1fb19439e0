package domain

import (
	"fmt"
	"time"
)

// fibonacciPoints is the accepted estimation scale for story complexity.
var fibonacciPoints = map[int]bool{
	1: true, 2: true, 3: true, 5: true, 8: true, 13: true, 21: true,
}

// UserStory is a backlog item estimated in complexity points. Points are an
// abstract Fibonacci-scaled measure, not hours; the two are never converted
// into each other.
type UserStory struct {
	ID        string
	ProjectID string
	SprintID  *string
	Title     string
	Points    int
	Status    StoryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidatePoints checks that Points is on the Fibonacci estimation scale.
func (s *UserStory) ValidatePoints() error {
	if !fibonacciPoints[s.Points] {
		return fmt.Errorf("story points %d are not on the estimation scale (1, 2, 3, 5, 8, 13, 21)", s.Points)
	}
	return nil
}

// InSprint reports whether the story is assigned to the given sprint.
func (s *UserStory) InSprint(sprintID string) bool {
	return s.SprintID != nil && *s.SprintID == sprintID
}
