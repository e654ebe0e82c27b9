package hosted

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/domy-v-italii/portal/internal/app"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/internal/utils"
	"github.com/domy-v-italii/portal/models"
)

// refreshTokenTTL bounds how long a refresh token stays redeemable.
const refreshTokenTTL = 30 * 24 * time.Hour

type credentialsRequest struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data"`
}

type authResponse struct {
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session,omitempty"`
}

// token implements the password grant: POST /auth/v1/token?grant_type=password.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if r.URL.Query().Get("grant_type") != "password" {
		utils.WriteError(w, app.MsgUnsupportedGrantType, http.StatusBadRequest)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.storages.AccountRepository.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			utils.WriteError(w, app.MsgInvalidLoginCredentials, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during sign-in")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteError(w, app.MsgInvalidLoginCredentials, http.StatusBadRequest)
		return
	}

	h.issueSession(w, r, account)
}

// signup creates an account: POST /auth/v1/signup. With e-mail
// confirmation required the response carries the user but no session.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.credentials.Validate(ctx, req.Email, req.Password); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	account, err := h.storages.AccountRepository.CreateAccount(ctx, store.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Data["name"],
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			utils.WriteError(w, app.MsgUserAlreadyRegistered, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during signup")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if h.auth.RequireEmailConfirm {
		utils.WriteJSON(w, authResponse{User: accountUser(account)}, http.StatusOK)
		return
	}

	h.issueSession(w, r, account)
}

// logout revokes the refresh token and clears both session cookies:
// POST /auth/v1/logout. Logging out an anonymous caller succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		if err = h.storages.SessionRepository.DeleteSession(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("error deleting session")
		}
	}

	clearSessionCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

// user resolves the caller's access token: GET /auth/v1/user.
func (h *Handler) user(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString := bearerToken(r)
	if tokenString == "" {
		if cookie, err := r.Cookie(accessTokenCookie); err == nil {
			tokenString = cookie.Value
		}
	}
	if tokenString == "" {
		utils.WriteError(w, app.MsgMissingAccessToken, http.StatusUnauthorized)
		return
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
	if err != nil {
		utils.WriteError(w, app.MsgInvalidAccessToken, http.StatusUnauthorized)
		return
	}

	account, err := h.storages.AccountRepository.FindAccountByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			utils.WriteError(w, app.MsgInvalidAccessToken, http.StatusUnauthorized)
			return
		}
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, authResponse{User: accountUser(account)}, http.StatusOK)
}

// issueSession mints an access token plus refresh token for account,
// sets the session cookies and writes the auth response.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, account store.Account) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := utils.GenerateJWTToken(h.auth.TokenIssuer, account.ID, h.auth.TokenDuration, h.auth.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	refreshToken, err := h.storages.SessionRepository.CreateSession(ctx, account.ID, refreshTokenTTL)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(refreshTokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, authResponse{
		User: accountUser(account),
		Session: &models.Session{
			AccessToken:  token.SignedString,
			RefreshToken: refreshToken,
			ExpiresAt:    token.ExpiresAt,
		},
	}, http.StatusOK)
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func accountUser(account store.Account) *models.User {
	return &models.User{
		ID:           account.ID,
		Email:        account.Email,
		UserMetadata: models.UserMetadata{Name: account.Name},
		CreatedAt:    account.CreatedAt,
	}
}
