package domain

import (
	"context"
	"time"
)

// Task is a single task on the board. Tasks are append-only: once created
// they are never edited or deleted.
type Task struct {
	ID         int64
	Text       string
	CreatedBy  int64
	AssignedTo *int64  // nil when unassigned
	DueDate    *string // ISO date "2006-01-02"; nil when no due date
	CreatedAt  time.Time
}

// Filter selects a subset of the task list.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterAssigned Filter = "assigned" // assigned to the current user
	FilterCreated  Filter = "created"  // created by the current user
	FilterOverdue  Filter = "overdue"  // due date strictly before today
	FilterToday    Filter = "today"    // due date equal to today
)

// ParseFilter maps a request value to a Filter. Unknown values fall back
// to FilterAll rather than erroring.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterAssigned, FilterCreated, FilterOverdue, FilterToday:
		return Filter(s)
	default:
		return FilterAll
	}
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	// ListAll returns every task ordered by creation time descending.
	ListAll(ctx context.Context) ([]Task, error)
}
