package service

import "github.com/tmarsden/taskboard/internal/domain"

// VisibleTasks returns the subset of tasks matching the given filter for the
// given user, preserving the input order. Due dates are ISO "2006-01-02"
// strings, so calendar comparison is plain string comparison. An unknown
// filter behaves like domain.FilterAll.
func VisibleTasks(tasks []domain.Task, filter domain.Filter, currentUserID int64, today string) []domain.Task {
	switch filter {
	case domain.FilterAssigned:
		return filterTasks(tasks, func(t *domain.Task) bool {
			return t.AssignedTo != nil && *t.AssignedTo == currentUserID
		})
	case domain.FilterCreated:
		return filterTasks(tasks, func(t *domain.Task) bool {
			return t.CreatedBy == currentUserID
		})
	case domain.FilterOverdue:
		return filterTasks(tasks, func(t *domain.Task) bool {
			return t.DueDate != nil && *t.DueDate < today
		})
	case domain.FilterToday:
		return filterTasks(tasks, func(t *domain.Task) bool {
			return t.DueDate != nil && *t.DueDate == today
		})
	default:
		return tasks
	}
}

// ShouldNotify reports whether a newly inserted task warrants a notification
// for the given user: assigned to them by somebody else.
func ShouldNotify(task *domain.Task, userID int64) bool {
	return task.AssignedTo != nil && *task.AssignedTo == userID && task.CreatedBy != userID
}

func filterTasks(tasks []domain.Task, keep func(*domain.Task) bool) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		if keep(&tasks[i]) {
			filtered = append(filtered, tasks[i])
		}
	}
	return filtered
}
