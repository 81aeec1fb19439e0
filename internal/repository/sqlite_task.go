package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sprintcap/internal/db"
	"sprintcap/internal/domain"
)

const taskColumns = `id, project_id, title, status, estimated_hours, due_date, deleted_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo on a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo. The handle may be a
// *sql.DB or a transaction.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		string(t.Status),
		nullableFloatToValue(t.EstimatedHours),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.DeletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND deleted_at IS NULL ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) ListScheduled(ctx context.Context, projectID, excludeID string) ([]ScheduledTask, error) {
	query := `SELECT id, COALESCE(estimated_hours, 0), due_date
		FROM tasks
		WHERE project_id = ? AND due_date IS NOT NULL AND deleted_at IS NULL`
	args := []any{projectID}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	query += ` ORDER BY due_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading scheduled tasks: %w", err)
	}
	defer rows.Close()

	var scheduled []ScheduledTask
	for rows.Next() {
		var s ScheduledTask
		var due string
		if err := rows.Scan(&s.TaskID, &s.Hours, &due); err != nil {
			return nil, fmt.Errorf("scanning scheduled task: %w", err)
		}
		day, err := time.Parse(dateLayout, due)
		if err != nil {
			return nil, fmt.Errorf("parsing due date %q: %w", due, err)
		}
		s.Day = day
		scheduled = append(scheduled, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled tasks: %w", err)
	}
	return scheduled, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, status = ?, estimated_hours = ?, due_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Status),
		nullableFloatToValue(t.EstimatedHours),
		nullableTimeToString(t.DueDate, dateLayout),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE tasks SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(res, "task", id)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var status, createdAt, updatedAt string
	var hours sql.NullFloat64
	var dueDate, deletedAt sql.NullString

	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &status, &hours, &dueDate, &deletedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	t.EstimatedHours = floatPtrFromNull(hours)
	if t.DueDate, err = parseNullableTime(dueDate, dateLayout); err != nil {
		return nil, fmt.Errorf("task %s due date: %w", t.ID, err)
	}
	if t.DeletedAt, err = parseNullableTime(deletedAt, time.RFC3339); err != nil {
		return nil, fmt.Errorf("task %s deleted timestamp: %w", t.ID, err)
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}
