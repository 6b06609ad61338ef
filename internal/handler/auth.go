package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tmarsden/taskboard/internal/domain"
	"github.com/tmarsden/taskboard/internal/service"
	"github.com/tmarsden/taskboard/internal/view"
)

// AuthHandler handles the authentication pages and actions.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. The limiter throttles credential
// attempts per client IP.
func NewAuthHandler(auth *service.AuthService, limiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, cookieSecure: cookieSecure}
}

// HandleLoginPage renders the login form. Authenticated users are sent back
// to the board.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	view.LoginPage("").Render(r.Context(), w)
}

// HandleLogin processes a login form submission and sets the session cookie.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		http.Error(w, "Too many attempts. Try again shortly.", http.StatusTooManyRequests)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		view.LoginPage("Invalid form submission.").Render(r.Context(), w)
		return
	}

	token, err := h.auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			view.LoginPage("Invalid email or password.").Render(r.Context(), w)
			return
		}
		slog.Error("login user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.LoginPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	view.RegisterPage("").Render(r.Context(), w)
}

// HandleRegister processes a registration form submission.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		http.Error(w, "Too many attempts. Try again shortly.", http.StatusTooManyRequests)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		view.RegisterPage("Invalid form submission.").Render(r.Context(), w)
		return
	}

	_, err := h.auth.Register(r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
		r.PostFormValue("confirm_password"),
	)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			w.WriteHeader(http.StatusConflict)
			view.RegisterPage("An account with that email already exists.").Render(r.Context(), w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.RegisterPage(err.Error()).Render(r.Context(), w)
			return
		}
		slog.Error("register user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.RegisterPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLogout clears the auth cookie and returns to the login page.
// POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleMe returns the currently authenticated user.
// GET /api/auth/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}
