package handler

import (
	"net/http"
	"strings"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/session"
)

// AuthHandler serves the login and register pages and the logout action.
type AuthHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *Renderer
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(client *backend.Client, sessions *session.Manager, renderer *Renderer) *AuthHandler {
	return &AuthHandler{backend: client, sessions: sessions, renderer: renderer}
}

// LoginForm handles GET /login. Already-authenticated visitors are sent to
// the catalog before any form renders.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.renderer.Render(w, r, "login.html", map[string]interface{}{
		"Next": r.URL.Query().Get("next"),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "Invalid form submission", "", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if email == "" || password == "" {
		h.renderLogin(w, r, "Email and password are required", email, next)
		return
	}

	result, err := h.backend.Login(r.Context(), email, password)
	if err != nil {
		h.renderLogin(w, r, userMessage(err), email, next)
		return
	}

	if _, err := h.sessions.Issue(r.Context(), w, result.AccessToken, result.User); err != nil {
		h.renderLogin(w, r, "Could not start your session. Please try again.", email, next)
		return
	}

	h.renderer.flash.Add(w, r, FlashSuccess, "Welcome back, "+result.User.Name)
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, errMsg, email, next string) {
	h.renderer.Render(w, r, "login.html", map[string]interface{}{
		"Error": errMsg,
		"Email": email,
		"Next":  next,
	})
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.renderer.Render(w, r, "register.html", nil)
}

// Register handles POST /register. Success redirects to the login page; no
// automatic sign-in happens.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, "Invalid form submission", "", "")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	if name == "" || email == "" || password == "" {
		h.renderRegister(w, r, "Name, email and password are required", name, email)
		return
	}
	if password != confirm {
		h.renderRegister(w, r, "Passwords do not match", name, email)
		return
	}

	if _, err := h.backend.Register(r.Context(), name, email, password); err != nil {
		h.renderRegister(w, r, userMessage(err), name, email)
		return
	}

	h.renderer.flash.Add(w, r, FlashSuccess, "Account created. Please sign in.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, errMsg, name, email string) {
	h.renderer.Render(w, r, "register.html", map[string]interface{}{
		"Error": errMsg,
		"Name":  name,
		"Email": email,
	})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	h.renderer.flash.Add(w, r, FlashSuccess, "Signed out")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// safeNext keeps post-login redirects on this site. Anything that is not a
// plain relative path falls back to the catalog.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
