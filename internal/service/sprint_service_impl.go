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

type sprintService struct {
	sprints repository.SprintRepo
	stories repository.StoryRepo
	uow     db.UnitOfWork
	daily   capacity.Points
}

// NewSprintService creates a SprintService enforcing the default daily
// story-point budget.
func NewSprintService(sprints repository.SprintRepo, stories repository.StoryRepo, uow db.UnitOfWork) SprintService {
	return &sprintService{sprints: sprints, stories: stories, uow: uow, daily: capacity.DefaultDailyStoryPoints}
}

func (s *sprintService) Create(ctx context.Context, sp *domain.Sprint) error {
	if sp.ProjectID == "" {
		return fmt.Errorf("sprint project is required")
	}
	if sp.Name == "" {
		return fmt.Errorf("sprint name is required")
	}
	if err := sprintWindow(sp).Validate(time.Now().UTC()); err != nil {
		return err
	}

	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	if sp.Status == "" {
		sp.Status = domain.SprintPlanned
	}

	// Overlap check and insert share one transaction so two sprints racing
	// for the same window cannot both pass.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSprints := repository.NewSQLiteSprintRepo(tx)
		if err := s.rejectOverlap(ctx, txSprints, sp.ProjectID, sprintWindow(sp), ""); err != nil {
			return err
		}
		return txSprints.Create(ctx, sp)
	})
}

func (s *sprintService) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	return s.sprints.GetByID(ctx, id)
}

func (s *sprintService) ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error) {
	return s.sprints.ListByProject(ctx, projectID)
}

func (s *sprintService) UpdateWindow(ctx context.Context, sprintID string, start, end time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSprints := repository.NewSQLiteSprintRepo(tx)

		sp, err := txSprints.GetByID(ctx, sprintID)
		if err != nil {
			return err
		}

		candidate := capacity.Window{Start: start, End: end}
		if err := candidate.Validate(time.Now().UTC()); err != nil {
			return err
		}
		if err := s.rejectOverlap(ctx, txSprints, sp.ProjectID, candidate, sprintID); err != nil {
			return err
		}

		sp.StartDate = capacity.DayOf(start)
		sp.EndDate = capacity.DayOf(end)
		sp.UpdatedAt = time.Now().UTC()
		return txSprints.Update(ctx, sp)
	})
}

func (s *sprintService) SetStatus(ctx context.Context, sprintID string, status domain.SprintStatus) error {
	if !domain.ValidSprintStatuses[string(status)] {
		return fmt.Errorf("invalid sprint status %q", status)
	}
	sp, err := s.sprints.GetByID(ctx, sprintID)
	if err != nil {
		return err
	}
	sp.Status = status
	sp.UpdatedAt = time.Now().UTC()
	return s.sprints.Update(ctx, sp)
}

func (s *sprintService) CapacityReport(ctx context.Context, sprintID string) (*contract.SprintCapacityReport, error) {
	sp, err := s.sprints.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	used, err := s.stories.SumPointsBySprint(ctx, sprintID)
	if err != nil {
		return nil, fmt.Errorf("aggregating sprint points: %w", err)
	}
	sc := capacity.ForWindow(sprintWindow(sp), capacity.Points(used), s.daily)
	return capacityReport(sp, sc), nil
}

// rejectOverlap errors when candidate shares a day with any sibling sprint
// in the project, excluding excludeID (the sprint being edited).
func (s *sprintService) rejectOverlap(ctx context.Context, sprints repository.SprintRepo, projectID string, candidate capacity.Window, excludeID string) error {
	siblings, err := sprints.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading sibling sprints: %w", err)
	}
	for _, sib := range siblings {
		if sib.ID == excludeID {
			continue
		}
		if candidate.Overlaps(sprintWindow(sib)) {
			return fmt.Errorf("sprint dates overlap %q (%s to %s); no two sprints in a project may share a day",
				sib.Name, sib.StartDate.Format(dateLayout), sib.EndDate.Format(dateLayout))
		}
	}
	return nil
}
