package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sprintcap/internal/domain"
)

var testKeyCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectKey(key string) ProjectOption {
	return func(p *domain.Project) {
		p.Key = key
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func defaultKey(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 2; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 2 {
		letters = append(letters, 'X')
	}
	// Suffix with a counter-derived letter pair so parallel fixtures never
	// collide on the unique key index.
	n := testKeyCounter.Add(1)
	return fmt.Sprintf("%s%c%c", string(letters), 'A'+byte(n/26%26), 'A'+byte(n%26))
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Key:       defaultKey(name),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithEstimate(hours float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &hours
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDeletedAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DeletedAt = &d
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintStatus(s domain.SprintStatus) SprintOption {
	return func(sp *domain.Sprint) {
		sp.Status = s
	}
}

func NewTestSprint(projectID, name string, start, end time.Time, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Status:    domain.SprintPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Story options
type StoryOption func(*domain.UserStory)

func WithPoints(p int) StoryOption {
	return func(s *domain.UserStory) {
		s.Points = p
	}
}

func WithSprintID(id string) StoryOption {
	return func(s *domain.UserStory) {
		s.SprintID = &id
	}
}

func WithStoryStatus(st domain.StoryStatus) StoryOption {
	return func(s *domain.UserStory) {
		s.Status = st
	}
}

func NewTestStory(projectID, title string, opts ...StoryOption) *domain.UserStory {
	now := time.Now().UTC()
	s := &domain.UserStory{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Points:    3,
		Status:    domain.StoryBacklog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
