package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

const adminSessionName = "admin-session"

type AdminHandler struct {
	Store     *store.Store
	Sessions  *sessions.CookieStore
	UploadDir string
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil || user.Role != "admin" {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	session, _ := h.Sessions.Get(r, adminSessionName)
	session.Values["authenticated"] = true
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	slog.Info("admin login", "user_id", user.ID)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "logged in",
		Data:    map[string]interface{}{"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role},
	})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Sessions.Get(r, adminSessionName)
	session.Values["authenticated"] = false
	session.Options.MaxAge = -1 // Expire immediately
	session.Save(r, w)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "logged out"})
}

// AuthMiddleware ensures the caller holds an authenticated admin session.
// The CSRF token for subsequent mutations rides on every protected
// response.
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.Sessions.Get(r, adminSessionName)
		if auth, ok := session.Values["authenticated"].(bool); !ok || !auth {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		next(w, r)
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetDashboardStats()
	if err != nil {
		respondStoreError(w, err, "stats")
		return
	}
	respondData(w, stats)
}
