package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tmarsden/taskboard/internal/domain"
	"github.com/tmarsden/taskboard/internal/service"
)

// APIHandler exposes the board as a JSON API using the same cookie session.
type APIHandler struct {
	board *service.BoardService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(board *service.BoardService) *APIHandler {
	return &APIHandler{board: board}
}

// HandleListTasks returns the visible task list for the requested filter.
// GET /api/tasks?filter=F
// Response: {"tasks": [...], "filter": "F"}
func (h *APIHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	tasks, err := h.board.ListTasks(r.Context())
	if err != nil {
		slog.Error("list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	filter := domain.ParseFilter(r.URL.Query().Get("filter"))
	visible := service.VisibleTasks(tasks, filter, user.ID, service.Today())

	writeJSON(w, http.StatusOK, map[string]any{
		"tasks":  toTaskDTOs(visible),
		"filter": string(filter),
	})
}

// HandleCreateTask creates a task from a JSON body.
// POST /api/tasks
// Request:  {"task":"...","assignedTo":2,"dueDate":"2026-01-02"}
// Response: {"task": {...}}
func (h *APIHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Task       string  `json:"task"`
		AssignedTo *int64  `json:"assignedTo"`
		DueDate    *string `json:"dueDate"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	task, err := h.board.CreateTask(r.Context(), user.ID, req.Task, req.AssignedTo, req.DueDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create task", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"task": toTaskDTO(task),
	})
}

// HandleListUsers returns the user directory.
// GET /api/users
// Response: {"users": [...]}
func (h *APIHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	users, err := h.board.ListUsers(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": toUserDTOs(users),
	})
}
