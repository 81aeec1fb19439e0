package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sprintcap/internal/capacity"
	"sprintcap/internal/db"
	"sprintcap/internal/domain"
	"sprintcap/internal/repository"
)

type storyService struct {
	stories repository.StoryRepo
	sprints repository.SprintRepo
	uow     db.UnitOfWork
	daily   capacity.Points
}

// NewStoryService creates a StoryService enforcing the default daily
// story-point budget on sprint assignment.
func NewStoryService(stories repository.StoryRepo, sprints repository.SprintRepo, uow db.UnitOfWork) StoryService {
	return &storyService{stories: stories, sprints: sprints, uow: uow, daily: capacity.DefaultDailyStoryPoints}
}

func (s *storyService) Create(ctx context.Context, st *domain.UserStory) error {
	if st.ProjectID == "" {
		return fmt.Errorf("story project is required")
	}
	if st.Title == "" {
		return fmt.Errorf("story title is required")
	}
	if err := st.ValidatePoints(); err != nil {
		return err
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	if st.Status == "" {
		st.Status = domain.StoryBacklog
	}
	return s.stories.Create(ctx, st)
}

func (s *storyService) GetByID(ctx context.Context, id string) (*domain.UserStory, error) {
	return s.stories.GetByID(ctx, id)
}

func (s *storyService) ListByProject(ctx context.Context, projectID string) ([]*domain.UserStory, error) {
	return s.stories.ListByProject(ctx, projectID)
}

func (s *storyService) ListBacklog(ctx context.Context, projectID string) ([]*domain.UserStory, error) {
	return s.stories.ListBacklog(ctx, projectID)
}

func (s *storyService) ListBySprint(ctx context.Context, sprintID string) ([]*domain.UserStory, error) {
	return s.stories.ListBySprint(ctx, sprintID)
}

func (s *storyService) Update(ctx context.Context, st *domain.UserStory) error {
	if err := st.ValidatePoints(); err != nil {
		return err
	}
	st.UpdatedAt = time.Now().UTC()
	return s.stories.Update(ctx, st)
}

// AssignToSprint moves a story into a sprint. The point aggregation, the
// capacity comparison, and the write share one transaction: two stories
// racing for a sprint's last points cannot both land.
func (s *storyService) AssignToSprint(ctx context.Context, storyID, sprintID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStories := repository.NewSQLiteStoryRepo(tx)
		txSprints := repository.NewSQLiteSprintRepo(tx)

		story, err := txStories.GetByID(ctx, storyID)
		if err != nil {
			return err
		}
		sprint, err := txSprints.GetByID(ctx, sprintID)
		if err != nil {
			return err
		}
		if story.ProjectID != sprint.ProjectID {
			return fmt.Errorf("story and sprint belong to different projects")
		}
		if story.InSprint(sprintID) {
			return nil
		}

		used, err := txStories.SumPointsBySprint(ctx, sprintID)
		if err != nil {
			return fmt.Errorf("aggregating sprint points: %w", err)
		}
		sc := capacity.ForWindow(sprintWindow(sprint), capacity.Points(used+story.Points), s.daily)
		if sc.OverCapacity {
			return fmt.Errorf("assigning %d points would exceed sprint capacity (%d of %d points used)",
				story.Points, used, int(sc.TotalCapacity))
		}

		story.SprintID = &sprintID
		if story.Status == domain.StoryBacklog {
			story.Status = domain.StoryTodo
		}
		story.UpdatedAt = time.Now().UTC()
		return txStories.Update(ctx, story)
	})
}

func (s *storyService) RemoveFromSprint(ctx context.Context, storyID string) error {
	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.SprintID == nil {
		return nil
	}
	story.SprintID = nil
	story.Status = domain.StoryBacklog
	story.UpdatedAt = time.Now().UTC()
	return s.stories.Update(ctx, story)
}

func (s *storyService) MoveStatus(ctx context.Context, storyID string, status domain.StoryStatus) error {
	if !domain.ValidStoryStatuses[string(status)] {
		return fmt.Errorf("invalid story status %q", status)
	}
	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	story.Status = status
	story.UpdatedAt = time.Now().UTC()
	return s.stories.Update(ctx, story)
}

func (s *storyService) Delete(ctx context.Context, id string) error {
	return s.stories.Delete(ctx, id)
}
