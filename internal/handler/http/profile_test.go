package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/models"
)

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	user := th.signedInUser()

	th.profile.EXPECT().
		FetchProfile(gomock.Any(), gomock.Any(), user.ID).
		Return(models.Profile{ID: user.ID, Name: "Marta", Role: models.RoleMember}, nil)

	rec := th.do(http.MethodGet, "/api/profile", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Marta"`)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	user := th.signedInUser()

	th.profile.EXPECT().
		FetchProfile(gomock.Any(), gomock.Any(), user.ID).
		Return(models.Profile{}, backend.ErrRowNotFound)

	rec := th.do(http.MethodGet, "/api/profile", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, rec.Body.String())
}

func TestEnsureProfileEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	user := th.signedInUser()

	th.profile.EXPECT().
		EnsureProfile(gomock.Any(), gomock.Any(), user).
		Return(nil)

	rec := th.do(http.MethodPost, "/api/profile/ensure", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
