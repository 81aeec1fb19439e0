package repository

import (
	"context"
	"time"

	"sprintcap/internal/domain"
)

// ScheduledTask is the minimal view of a task occupying calendar capacity:
// its identity, its estimated effort, and the day it is due. It backs the
// capacity ledger snapshot the planner folds over.
type ScheduledTask struct {
	TaskID string
	Hours  float64
	Day    time.Time
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByKey(ctx context.Context, key string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// ListScheduled returns the capacity ledger snapshot for a project:
	// every non-deleted task with a due date, excluding excludeID when
	// non-empty (the item being edited must not collide with itself).
	// NULL estimates read as zero hours.
	ListScheduled(ctx context.Context, projectID, excludeID string) ([]ScheduledTask, error)
	Update(ctx context.Context, t *domain.Task) error
	SoftDelete(ctx context.Context, id string) error
}

type SprintRepo interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	// ListByProject returns all sprints sharing the project's scheduling
	// scope; sprint windows within one project may never share a day.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error)
	Update(ctx context.Context, s *domain.Sprint) error
	Delete(ctx context.Context, id string) error
}

type StoryRepo interface {
	Create(ctx context.Context, s *domain.UserStory) error
	GetByID(ctx context.Context, id string) (*domain.UserStory, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.UserStory, error)
	ListBacklog(ctx context.Context, projectID string) ([]*domain.UserStory, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.UserStory, error)
	// SumPointsBySprint aggregates the complexity points assigned to a sprint.
	SumPointsBySprint(ctx context.Context, sprintID string) (int, error)
	Update(ctx context.Context, s *domain.UserStory) error
	Delete(ctx context.Context, id string) error
}
