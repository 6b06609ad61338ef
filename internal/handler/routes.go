package handler

import (
	"net/http"

	"github.com/tmarsden/taskboard/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	board *service.BoardService,
	feed *service.TaskFeed,
	limiter *service.TokenBucket,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, limiter, cookieSecure)
	boardHandler := NewBoardHandler(board)
	notifyHandler := NewNotifyHandler(board, feed)
	apiHandler := NewAPIHandler(board)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Pages.
	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(boardHandler.HandleBoardPage)))
	mux.Handle("GET /login", OptionalAuth(auth, http.HandlerFunc(authHandler.HandleLoginPage)))
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.Handle("GET /register", OptionalAuth(auth, http.HandlerFunc(authHandler.HandleRegisterPage)))
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)

	// Board fragments and the notification stream.
	mux.Handle("GET /board/tasks", RequireAuth(auth, http.HandlerFunc(boardHandler.HandleFilterTasks)))
	mux.Handle("POST /board/tasks", RequireAuth(auth, http.HandlerFunc(boardHandler.HandleCreateTask)))
	mux.Handle("GET /notifications", RequireAuth(auth, http.HandlerFunc(notifyHandler.HandleNotifications)))

	// JSON API.
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))
	mux.Handle("GET /api/tasks", RequireAuth(auth, http.HandlerFunc(apiHandler.HandleListTasks)))
	mux.Handle("POST /api/tasks", RequireAuth(auth, http.HandlerFunc(apiHandler.HandleCreateTask)))
	mux.Handle("GET /api/users", RequireAuth(auth, http.HandlerFunc(apiHandler.HandleListUsers)))
}
