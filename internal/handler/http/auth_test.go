// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/catalog"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/mock"
	"github.com/domy-v-italii/portal/internal/service"
	"github.com/domy-v-italii/portal/internal/workers"
	"github.com/domy-v-italii/portal/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testHandler struct {
	handler   *Handler
	auth      *mock.MockAuthService
	profile   *mock.MockProfileService
	dashboard *mock.MockDashboardService
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) *testHandler {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	profile := mock.NewMockProfileService(ctrl)
	dashboard := mock.NewMockDashboardService(ctrl)

	services := &service.Services{
		AuthService:      auth,
		ProfileService:   profile,
		DashboardService: dashboard,
	}

	h := NewHandler(services, catalog.New(), workers.NewJobRunner(logger.Nop()), logger.Nop())

	return &testHandler{handler: h, auth: auth, profile: profile, dashboard: dashboard}
}

func (th *testHandler) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return th.doRequest(req)
}

func (th *testHandler) doRequest(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)
	// background profile inserts must settle before assertions
	th.handler.jobs.Wait()
	return rec
}

// newUploadRequest builds a raw-body document upload.
func newUploadRequest(target, fileName, contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("X-File-Name", fileName)
	req.Header.Set("Content-Type", contentType)
	return req
}

// ─────────────────────────────────────────────
// Login proxy
// ─────────────────────────────────────────────

func TestLogin_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	// the service guards validation; the handler passes fields through
	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "", "x").
		Return(nil, service.ErrMissingCredentials)

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"","password":"x"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, rec.Body.String())
}

func TestLogin_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "tajneheslo").
		Return(nil, backend.ErrNotConfigured)

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Auth is not configured on server"}`, rec.Body.String())
}

func TestLogin_BackendRejection_VerbatimMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "spatne").
		Return(nil, &backend.APIError{Status: 400, Message: "Invalid login credentials"})

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"spatne"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid login credentials"}`, rec.Body.String())
}

func TestLogin_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "tajneheslo").
		Return(nil, errors.New("dial tcp: connection refused"))

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestLogin_Success_ReplaysBackendCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	user := &models.User{ID: "u-1", Email: "marta@example.cz"}

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "tajneheslo").
		DoAndReturn(func(_ context.Context, jar *backend.CookieJar, _, _ string) (*models.User, error) {
			jar.Collect([]*http.Cookie{{Name: "sb-access-token", Value: "jwt-token", Path: "/", HttpOnly: true}})
			return user, nil
		})
	th.profile.EXPECT().
		EnsureProfile(gomock.Any(), gomock.Any(), user).
		Return(nil)

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":"u-1","email":"marta@example.cz"}}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sb-access-token", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_Success_WithoutUserBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	// no EnsureProfile expectation: without a user body there is no
	// profile row to ensure
	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "tajneheslo").
		DoAndReturn(func(_ context.Context, jar *backend.CookieJar, _, _ string) (*models.User, error) {
			jar.Collect([]*http.Cookie{{Name: "sb-access-token", Value: "jwt-token", Path: "/", HttpOnly: true}})
			return nil, nil
		})

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"user":null}`, rec.Body.String())
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestLogin_Rejection_StillReplaysCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), "marta@example.cz", "spatne").
		DoAndReturn(func(_ context.Context, jar *backend.CookieJar, _, _ string) (*models.User, error) {
			// backend clears stale session cookies even on rejection
			jar.Collect([]*http.Cookie{{Name: "sb-access-token", Value: "", MaxAge: -1}})
			return nil, &backend.APIError{Status: 400, Message: "Invalid login credentials"}
		})

	rec := th.do(http.MethodPost, "/api/auth/login", `{"email":"marta@example.cz","password":"spatne"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
}

// ─────────────────────────────────────────────
// Signup proxy
// ─────────────────────────────────────────────

func TestSignup_WithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	user := &models.User{ID: "u-2", Email: "petr@example.cz"}

	th.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any(), "Petr", "petr@example.cz", "tajneheslo").
		Return(user, true, nil)
	th.profile.EXPECT().
		EnsureProfile(gomock.Any(), gomock.Any(), user).
		Return(nil)

	rec := th.do(http.MethodPost, "/api/auth/signup", `{"name":"Petr","email":"petr@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"hasSession":true,"user":{"id":"u-2","email":"petr@example.cz"}}`, rec.Body.String())
}

func TestSignup_WithSession_WithoutUserBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any(), "Petr", "petr@example.cz", "tajneheslo").
		Return(nil, true, nil)

	rec := th.do(http.MethodPost, "/api/auth/signup", `{"name":"Petr","email":"petr@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"hasSession":true,"user":null}`, rec.Body.String())
}

func TestSignup_WithoutSession_SkipsProfileCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	user := &models.User{ID: "u-3", Email: "jana@example.cz"}

	// no EnsureProfile expectation: creating a profile without a
	// session would fail anyway
	th.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any(), "Jana", "jana@example.cz", "tajneheslo").
		Return(user, false, nil)

	rec := th.do(http.MethodPost, "/api/auth/signup", `{"name":"Jana","email":"jana@example.cz","password":"tajneheslo"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.HasSession)
	require.NotNil(t, body.User)
	assert.Equal(t, "u-3", body.User.ID)
}

// ─────────────────────────────────────────────
// Session, logout, magic link
// ─────────────────────────────────────────────

func TestSession_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Session(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	rec := th.do(http.MethodGet, "/api/auth/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestSession_NotConfiguredDegradesToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Session(gomock.Any(), gomock.Any()).
		Return(nil, backend.ErrNotConfigured)

	rec := th.do(http.MethodGet, "/api/auth/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestSession_ForwardsRequestCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	user := &models.User{ID: "u-1", Email: "marta@example.cz"}

	th.auth.EXPECT().
		Session(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, jar *backend.CookieJar) (*models.User, error) {
			cookies := jar.Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "sb-access-token", cookies[0].Name)
			return user, nil
		})

	rec := th.do(http.MethodGet, "/api/auth/session", "",
		&http.Cookie{Name: "sb-access-token", Value: "jwt-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marta@example.cz")
}

func TestLogout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	th.auth.EXPECT().
		Logout(gomock.Any(), gomock.Any()).
		Return(nil)

	rec := th.do(http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestMagicLink_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodPost, "/api/auth/magic-link", `{"email":"marta@example.cz"}`)

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.JSONEq(t, `{"error":"Magic link sign-in is not available, use password login"}`, rec.Body.String())
}
