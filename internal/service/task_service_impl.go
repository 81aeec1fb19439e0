package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sprintcap/internal/capacity"
	"sprintcap/internal/contract"
	"sprintcap/internal/db"
	"sprintcap/internal/domain"
	"sprintcap/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
	daily capacity.Hours
}

// NewTaskService creates a TaskService enforcing the default daily hours
// budget.
func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, uow: uow, daily: capacity.DefaultDailyTaskHours}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.ProjectID == "" {
		return fmt.Errorf("task project is required")
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

// Update writes a task's fields. When the task is scheduled, its estimate
// occupies calendar capacity, so the write re-runs the same ledger check as
// Schedule inside one transaction; editing the hours of a scheduled task
// cannot slip past the daily limit.
func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	if !t.Scheduled() {
		return s.tasks.Update(ctx, t)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		scheduled, err := txTasks.ListScheduled(ctx, t.ProjectID, t.ID)
		if err != nil {
			return fmt.Errorf("loading capacity ledger: %w", err)
		}
		if check := s.check(*t.DueDate, t.EffectiveHours(), scheduled); !check.Valid {
			return fmt.Errorf("update rejected: %s", check.Reason)
		}
		return txTasks.Update(ctx, t)
	})
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.SoftDelete(ctx, id)
}

func (s *taskService) CheckSchedule(ctx context.Context, projectID, excludeTaskID string, day time.Time, hours float64) (*contract.ScheduleCheck, error) {
	scheduled, err := s.tasks.ListScheduled(ctx, projectID, excludeTaskID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return s.check(day, hours, scheduled), nil
}

// Schedule validates and writes in one transaction. The advisory check the
// user saw earlier may be stale by commit time; only the snapshot read here,
// under the same transaction as the UPDATE, decides.
func (s *taskService) Schedule(ctx context.Context, taskID string, day time.Time, hours float64) (*contract.ScheduleCheck, error) {
	var result *contract.ScheduleCheck

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		task, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		scheduled, err := txTasks.ListScheduled(ctx, task.ProjectID, taskID)
		if err != nil {
			return fmt.Errorf("loading capacity ledger: %w", err)
		}

		result = s.check(day, hours, scheduled)
		if !result.Valid {
			// A rejected commitment is a structured outcome, not an error:
			// nothing was written, so there is nothing to roll back.
			return nil
		}

		dueDay := capacity.DayOf(day)
		task.DueDate = &dueDay
		task.EstimatedHours = &hours
		task.UpdatedAt = time.Now().UTC()
		return txTasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *taskService) check(day time.Time, hours float64, scheduled []repository.ScheduledTask) *contract.ScheduleCheck {
	ledger := ledgerFromScheduled(scheduled)
	res := capacity.Plan(day, capacity.Hours(hours), ledger, s.daily)
	return scheduleCheck(res, capacity.ValidateDay(res, capacity.Hours(hours), s.daily))
}
