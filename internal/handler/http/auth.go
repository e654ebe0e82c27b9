package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/service"
	"github.com/domy-v-italii/portal/internal/utils"
	"github.com/domy-v-italii/portal/models"
)

// login proxies the password grant to the auth backend. Every cookie
// the backend sets during the exchange is replayed to the browser,
// success or failure alike.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	// a malformed body simply has no credentials in it
	_ = json.NewDecoder(r.Body).Decode(&req)

	jar := backend.JarFromRequest(r)

	user, err := h.services.AuthService.Login(ctx, jar, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, jar, err)
		return
	}

	h.ensureProfileLater(jar, user)

	jar.ApplyTo(w)
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		User:    authUser(user),
	}, http.StatusOK)
}

// signup proxies account creation. hasSession is false when the
// backend held the session back pending e-mail confirmation.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	jar := backend.JarFromRequest(r)

	user, hasSession, err := h.services.AuthService.Signup(ctx, jar, req.Name, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, jar, err)
		return
	}

	if hasSession {
		h.ensureProfileLater(jar, user)
	} else {
		log.Info().Str("email", req.Email).Msg("signup pending e-mail confirmation")
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, models.SignupResponse{
		Success:    true,
		HasSession: hasSession,
		User:       authUser(user),
	}, http.StatusOK)
}

// logout proxies session invalidation. The backend's cookie-clearing
// headers ride back on the response.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jar := backend.JarFromRequest(r)

	if err := h.services.AuthService.Logout(ctx, jar); err != nil {
		h.writeAuthError(w, jar, err)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// session resolves the caller's cookies to the current user. Anonymous
// visitors get {"user":null}, never an error.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jar := backend.JarFromRequest(r)

	user, err := h.services.AuthService.Session(ctx, jar)
	if err != nil {
		if errors.Is(err, backend.ErrNotConfigured) {
			jar.ApplyTo(w)
			utils.WriteJSON(w, models.SessionResponse{User: nil}, http.StatusOK)
			return
		}
		log.Err(err).Msg("session resolution failed")
		h.writeAuthError(w, jar, err)
		return
	}

	jar.ApplyTo(w)
	utils.WriteJSON(w, models.SessionResponse{User: user}, http.StatusOK)
}

// magicLink answers the legacy magic-link endpoint. The feature is
// permanently off; password login is the only flow.
func (h *Handler) magicLink(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Magic link sign-in is not available, use password login", http.StatusNotImplemented)
}

// writeAuthError maps service and backend errors onto the proxy
// contract. Cookies collected before the failure are still replayed.
func (h *Handler) writeAuthError(w http.ResponseWriter, jar *backend.CookieJar, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		utils.WriteError(w, "Email and password are required", http.StatusBadRequest)
		return

	case errors.Is(err, backend.ErrNotConfigured):
		utils.WriteError(w, "Auth is not configured on server", http.StatusServiceUnavailable)
		return
	}

	jar.ApplyTo(w)

	if apiErr, ok := backend.AsAPIError(err); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusUnauthorized
		}
		utils.WriteError(w, apiErr.Message, status)
		return
	}

	// transport failure talking to the backend
	utils.WriteError(w, err.Error(), http.StatusBadGateway)
}

// authUser reduces the backend user to the {id, email} echo of the
// auth proxies. A grant confirmed without a user body echoes null.
func authUser(user *models.User) *models.AuthUser {
	if user == nil {
		return nil
	}
	return &models.AuthUser{ID: user.ID, Email: user.Email}
}

// ensureProfileLater schedules the duplicate-safe profile insert on a
// detached job so a slow or failing backend cannot delay the response.
// Without a user body there is no profile row to ensure.
func (h *Handler) ensureProfileLater(jar *backend.CookieJar, user *models.User) {
	if user == nil {
		return
	}
	// snapshot: the request jar is not safe to share with a goroutine
	detached := backend.NewCookieJar(jar.Cookies())

	h.jobs.Submit("ensure-profile", func(ctx context.Context) error {
		return h.services.ProfileService.EnsureProfile(ctx, detached, user)
	})
}
