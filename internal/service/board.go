package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmarsden/taskboard/internal/domain"
)

const maxTaskTextLen = 500

// BoardService coordinates the task board: listing tasks and the user
// directory, and creating tasks. Created tasks are announced on the change
// feed; the rendered list is always re-read from the store rather than
// patched locally.
type BoardService struct {
	tasks domain.TaskRepository
	users domain.UserRepository
	feed  *TaskFeed
}

// NewBoardService creates a new BoardService.
func NewBoardService(tasks domain.TaskRepository, users domain.UserRepository, feed *TaskFeed) *BoardService {
	return &BoardService{tasks: tasks, users: users, feed: feed}
}

// ListTasks returns all tasks ordered by creation time descending.
func (s *BoardService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListAll(ctx)
}

// ListUsers returns the user directory, used to resolve assignee names.
func (s *BoardService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single user by ID.
func (s *BoardService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// CreateTask validates and inserts a new task created by the given user,
// then publishes it to the change feed. AssignedTo and dueDate are optional;
// a due date must be an ISO "2006-01-02" calendar date.
func (s *BoardService) CreateTask(ctx context.Context, userID int64, text string, assignedTo *int64, dueDate *string) (*domain.Task, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: no authenticated user", domain.ErrInvalidInput)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: task text is required", domain.ErrInvalidInput)
	}
	if len(text) > maxTaskTextLen {
		return nil, fmt.Errorf("%w: task text must be %d characters or fewer", domain.ErrInvalidInput, maxTaskTextLen)
	}

	if dueDate != nil {
		if _, err := time.Parse("2006-01-02", *dueDate); err != nil {
			return nil, fmt.Errorf("%w: due date must be a YYYY-MM-DD date", domain.ErrInvalidInput)
		}
	}

	if assignedTo != nil {
		if _, err := s.users.GetByID(ctx, *assignedTo); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown assignee", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("check assignee: %w", err)
		}
	}

	task := &domain.Task{
		Text:       text,
		CreatedBy:  userID,
		AssignedTo: assignedTo,
		DueDate:    dueDate,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.feed.Publish(*task)
	return task, nil
}

// Today returns the current calendar date in ISO form, the format used for
// task due dates.
func Today() string {
	return time.Now().Format("2006-01-02")
}
