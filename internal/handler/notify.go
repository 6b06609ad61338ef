package handler

import (
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"
	"github.com/tmarsden/taskboard/internal/service"
	"github.com/tmarsden/taskboard/internal/view"
)

// NotifyHandler streams assignment notifications to the board page.
type NotifyHandler struct {
	board *service.BoardService
	feed  *service.TaskFeed
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(board *service.BoardService, feed *service.TaskFeed) *NotifyHandler {
	return &NotifyHandler{board: board, feed: feed}
}

// HandleNotifications holds an SSE stream open for the authenticated user and
// appends a toast whenever a task is assigned to them by somebody else. The
// subscription is released when the client disconnects. Feed events never
// touch the rendered task list; the list refreshes only through explicit
// list requests.
// GET /notifications
func (h *NotifyHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)
	sub := h.feed.Subscribe()
	defer sub.Unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case task, ok := <-sub.C:
			if !ok {
				return
			}
			if !service.ShouldNotify(&task, user.ID) {
				continue
			}

			creatorName := "Someone"
			if creator, err := h.board.GetUser(r.Context(), task.CreatedBy); err == nil {
				creatorName = creator.DisplayName()
			}

			if err := sse.PatchElementTempl(
				view.NotificationToast(task, creatorName),
				datastar.WithSelectorID("notifications"),
				datastar.WithModeAppend(),
			); err != nil {
				slog.Debug("notification stream closed", "error", err)
				return
			}
		}
	}
}
