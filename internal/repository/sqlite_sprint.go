package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sprintcap/internal/db"
	"sprintcap/internal/domain"
)

const sprintColumns = `id, project_id, name, start_date, end_date, status, created_at, updated_at`

// SQLiteSprintRepo implements SprintRepo on a SQLite database.
type SQLiteSprintRepo struct {
	db db.DBTX
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo. The handle may be a
// *sql.DB or a transaction.
func NewSQLiteSprintRepo(conn db.DBTX) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: conn}
}

func (r *SQLiteSprintRepo) Create(ctx context.Context, s *domain.Sprint) error {
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Name,
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		string(s.Status),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sprintColumns+` FROM sprints WHERE id = ?`, id)
	return scanSprint(row)
}

func (r *SQLiteSprintRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE project_id = ? ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*domain.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) Update(ctx context.Context, s *domain.Sprint) error {
	query := `UPDATE sprints SET name = ?, start_date = ?, end_date = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		string(s.Status),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sprint: %w", err)
	}
	return requireRow(res, "sprint", s.ID)
}

func (r *SQLiteSprintRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return requireRow(res, "sprint", id)
}

func scanSprint(row rowScanner) (*domain.Sprint, error) {
	var s domain.Sprint
	var start, end, status, createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.ProjectID, &s.Name, &start, &end, &status, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sprint not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}

	s.StartDate, err = time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parsing sprint start date %q: %w", start, err)
	}
	s.EndDate, err = time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parsing sprint end date %q: %w", end, err)
	}
	s.Status = domain.SprintStatus(status)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}
