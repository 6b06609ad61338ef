package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tmarsden/taskboard/internal/domain"
)

// TaskRepository implements domain.TaskRepository using SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite-backed TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db.SqlDB}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()

	var assignedTo sql.NullInt64
	if task.AssignedTo != nil {
		assignedTo = sql.NullInt64{Int64: *task.AssignedTo, Valid: true}
	}
	var dueDate sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: *task.DueDate, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (task, created_by, assigned_to, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		task.Text, task.CreatedBy, assignedTo, dueDate, now,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	task.ID = id
	task.CreatedAt = now
	return nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task, created_by, assigned_to, due_date, created_at
		 FROM tasks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			t          domain.Task
			assignedTo sql.NullInt64
			dueDate    sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Text, &t.CreatedBy, &assignedTo, &dueDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignedTo.Valid {
			t.AssignedTo = &assignedTo.Int64
		}
		if dueDate.Valid {
			t.DueDate = &dueDate.String
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
