package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	datastar "github.com/starfederation/datastar-go/datastar"
	"github.com/tmarsden/taskboard/internal/domain"
	"github.com/tmarsden/taskboard/internal/service"
	"github.com/tmarsden/taskboard/internal/view"
)

// BoardHandler handles the task board page and its SSE fragment endpoints.
type BoardHandler struct {
	board *service.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(board *service.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// HandleBoardPage renders the board. Anonymous visitors are redirected to
// the login page. A fresh page load always starts on the "all" filter.
// GET /
func (h *BoardHandler) HandleBoardPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	tasks, err := h.board.ListTasks(r.Context())
	if err != nil {
		slog.Error("list tasks for board", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	users, err := h.board.ListUsers(r.Context())
	if err != nil {
		slog.Error("list users for board", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	filter := domain.FilterAll
	visible := service.VisibleTasks(tasks, filter, user.ID, service.Today())
	view.BoardPage(user, users, visible, filter).Render(r.Context(), w)
}

// HandleFilterTasks re-derives the visible task list for the requested
// filter and patches the task-list fragment plus the hidden filter input.
// GET /board/tasks?filter=F
func (h *BoardHandler) HandleFilterTasks(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := domain.ParseFilter(r.URL.Query().Get("filter"))

	sse := datastar.NewSSE(w, r)
	if err := h.patchTaskList(r, sse, user, filter); err != nil {
		slog.Error("filter tasks", "error", err)
		sse.PatchElementTempl(view.BoardError("Could not load tasks. Please try again."))
		return
	}
	sse.PatchElementTempl(view.ActiveFilter(filter))
	sse.PatchElementTempl(view.BoardError(""))
}

// HandleCreateTask creates a task from the submitted form, then re-reads the
// store and patches the visible list under the submitter's current filter.
// POST /board/tasks (form-encoded: task, assigned_to, due_date, filter)
func (h *BoardHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)

	if err := r.ParseForm(); err != nil {
		sse.PatchElementTempl(view.BoardError("Invalid form submission."))
		return
	}

	assignedTo, err := parseOptionalID(r.PostFormValue("assigned_to"))
	if err != nil {
		sse.PatchElementTempl(view.BoardError("Invalid assignee."))
		return
	}
	dueDate := optionalString(r.PostFormValue("due_date"))
	filter := domain.ParseFilter(r.PostFormValue("filter"))

	_, err = h.board.CreateTask(r.Context(), user.ID, r.PostFormValue("task"), assignedTo, dueDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			sse.PatchElementTempl(view.BoardError(err.Error()))
			return
		}
		slog.Error("create task", "error", err)
		sse.PatchElementTempl(view.BoardError("Could not add the task. Please try again."))
		return
	}

	if err := h.patchTaskList(r, sse, user, filter); err != nil {
		slog.Error("reload tasks after create", "error", err)
		sse.PatchElementTempl(view.BoardError("Task added, but the list could not be refreshed."))
		return
	}
	sse.PatchElementTempl(view.BoardError(""))
}

// patchTaskList re-reads tasks and users from the store and patches the
// task-list fragment. On error nothing is patched, leaving the previously
// rendered list in place.
func (h *BoardHandler) patchTaskList(r *http.Request, sse *datastar.ServerSentEventGenerator, user *domain.User, filter domain.Filter) error {
	tasks, err := h.board.ListTasks(r.Context())
	if err != nil {
		return err
	}
	users, err := h.board.ListUsers(r.Context())
	if err != nil {
		return err
	}

	visible := service.VisibleTasks(tasks, filter, user.ID, service.Today())
	sse.PatchElementTempl(view.TaskList(visible, users, filter))
	return nil
}

func parseOptionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
