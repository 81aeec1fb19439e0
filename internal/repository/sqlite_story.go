package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sprintcap/internal/db"
	"sprintcap/internal/domain"
)

const storyColumns = `id, project_id, sprint_id, title, points, status, created_at, updated_at`

// SQLiteStoryRepo implements StoryRepo on a SQLite database.
type SQLiteStoryRepo struct {
	db db.DBTX
}

// NewSQLiteStoryRepo creates a new SQLiteStoryRepo. The handle may be a
// *sql.DB or a transaction.
func NewSQLiteStoryRepo(conn db.DBTX) *SQLiteStoryRepo {
	return &SQLiteStoryRepo{db: conn}
}

func (r *SQLiteStoryRepo) Create(ctx context.Context, s *domain.UserStory) error {
	query := `INSERT INTO stories (` + storyColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		nullableStringToValue(s.SprintID),
		s.Title,
		s.Points,
		string(s.Status),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting story: %w", err)
	}
	return nil
}

func (r *SQLiteStoryRepo) GetByID(ctx context.Context, id string) (*domain.UserStory, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = ?`, id)
	return scanStory(row)
}

func (r *SQLiteStoryRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.UserStory, error) {
	return r.list(ctx, `SELECT `+storyColumns+` FROM stories WHERE project_id = ? ORDER BY created_at`, projectID)
}

func (r *SQLiteStoryRepo) ListBacklog(ctx context.Context, projectID string) ([]*domain.UserStory, error) {
	return r.list(ctx, `SELECT `+storyColumns+` FROM stories WHERE project_id = ? AND sprint_id IS NULL ORDER BY created_at`, projectID)
}

func (r *SQLiteStoryRepo) ListBySprint(ctx context.Context, sprintID string) ([]*domain.UserStory, error) {
	return r.list(ctx, `SELECT `+storyColumns+` FROM stories WHERE sprint_id = ? ORDER BY created_at`, sprintID)
}

func (r *SQLiteStoryRepo) SumPointsBySprint(ctx context.Context, sprintID string) (int, error) {
	var total int
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(points), 0) FROM stories WHERE sprint_id = ?`, sprintID)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("summing sprint points: %w", err)
	}
	return total, nil
}

func (r *SQLiteStoryRepo) Update(ctx context.Context, s *domain.UserStory) error {
	query := `UPDATE stories SET sprint_id = ?, title = ?, points = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(s.SprintID),
		s.Title,
		s.Points,
		string(s.Status),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating story: %w", err)
	}
	return requireRow(res, "story", s.ID)
}

func (r *SQLiteStoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting story: %w", err)
	}
	return requireRow(res, "story", id)
}

func (r *SQLiteStoryRepo) list(ctx context.Context, query string, arg any) ([]*domain.UserStory, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	defer rows.Close()

	var stories []*domain.UserStory
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stories: %w", err)
	}
	return stories, nil
}

func scanStory(row rowScanner) (*domain.UserStory, error) {
	var s domain.UserStory
	var sprintID sql.NullString
	var status, createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.ProjectID, &sprintID, &s.Title, &s.Points, &status, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("story not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning story: %w", err)
	}

	s.SprintID = stringPtrFromNull(sprintID)
	s.Status = domain.StoryStatus(status)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}
