package handler

import (
	"time"

	"github.com/tmarsden/taskboard/internal/domain"
)

// UserDTO is the JSON representation of a user in the directory. The
// password hash never leaves the domain layer.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// TaskDTO is the JSON representation of a task.
type TaskDTO struct {
	ID         int64   `json:"id"`
	Task       string  `json:"task"`
	CreatedBy  int64   `json:"createdBy"`
	AssignedTo *int64  `json:"assignedTo"`
	DueDate    *string `json:"dueDate"`
	CreatedAt  string  `json:"createdAt"`
}

func toTaskDTO(t *domain.Task) TaskDTO {
	return TaskDTO{
		ID:         t.ID,
		Task:       t.Text,
		CreatedBy:  t.CreatedBy,
		AssignedTo: t.AssignedTo,
		DueDate:    t.DueDate,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = toTaskDTO(&tasks[i])
	}
	return dtos
}
