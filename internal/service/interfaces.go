package service

import (
	"context"
	"errors"
	"time"

	"sprintcap/internal/contract"
	"sprintcap/internal/domain"
)

// ErrLedgerUnavailable wraps a failed capacity-ledger read during an
// advisory check. Callers decide what a missing ledger means: the CLI
// reports "validation unavailable" and lets the user proceed (the advisory
// path stays fail-open), while the commit path runs inside a transaction
// and aborts on the same failure (fail-closed where it matters).
var ErrLedgerUnavailable = errors.New("capacity ledger unavailable")

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// Update re-validates the estimate against the day's capacity when the
	// task is scheduled, inside the same transaction as the write.
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error

	// CheckSchedule is the advisory validation run while the user is still
	// editing: would `hours` fit on `day` given everything else scheduled in
	// the project (excluding the task being edited)? Ledger read failures
	// come back wrapped in ErrLedgerUnavailable.
	CheckSchedule(ctx context.Context, projectID, excludeTaskID string, day time.Time, hours float64) (*contract.ScheduleCheck, error)

	// Schedule commits a task to a day. The ledger is re-read and the
	// validation re-run inside the same transaction as the write, so two
	// editors racing for the last free hours cannot both commit.
	Schedule(ctx context.Context, taskID string, day time.Time, hours float64) (*contract.ScheduleCheck, error)
}

type SprintService interface {
	// Create validates the candidate window (no past start, end after
	// start) and inserts the sprint in the same transaction as the
	// sibling-overlap check.
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error)
	// UpdateWindow moves a sprint's dates under the same rules as Create,
	// excluding the sprint itself from the overlap set.
	UpdateWindow(ctx context.Context, sprintID string, start, end time.Time) error
	SetStatus(ctx context.Context, sprintID string, status domain.SprintStatus) error
	CapacityReport(ctx context.Context, sprintID string) (*contract.SprintCapacityReport, error)
}

type StoryService interface {
	Create(ctx context.Context, s *domain.UserStory) error
	GetByID(ctx context.Context, id string) (*domain.UserStory, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.UserStory, error)
	ListBacklog(ctx context.Context, projectID string) ([]*domain.UserStory, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*domain.UserStory, error)
	Update(ctx context.Context, s *domain.UserStory) error
	// AssignToSprint puts a backlog story into a sprint, rejecting the
	// assignment when it would push the sprint past its point capacity.
	AssignToSprint(ctx context.Context, storyID, sprintID string) error
	RemoveFromSprint(ctx context.Context, storyID string) error
	MoveStatus(ctx context.Context, storyID string, status domain.StoryStatus) error
	Delete(ctx context.Context, id string) error
}
