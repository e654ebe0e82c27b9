// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/domy-v-italii/portal/models"
)

func TestListRegions_DefaultLanguageIsCzech(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/regions", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var regions []struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	require.NotEmpty(t, regions)

	var calabria string
	for _, region := range regions {
		if region.Slug == "calabria" {
			calabria = region.Name
		}
	}
	assert.Equal(t, "Kalábrie", calabria)
}

func TestListRegions_ExplicitLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/regions?lang=en", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Calabria")
}

func TestListProperties_FilterByRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/properties?region=calabria", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var properties []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &properties))
	require.NotEmpty(t, properties)
	for _, p := range properties {
		assert.Equal(t, "calabria", p.RegionSlug)
	}
}

func TestListProperties_UnknownRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/properties?region=toskansko", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Unknown region"}`, rec.Body.String())
}

func TestGetProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/properties/prop-cal-001", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var property models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &property))
	assert.Equal(t, "prop-cal-001", property.ID)
	assert.NotEmpty(t, property.Reference)
}

func TestGetProperty_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/catalog/properties/prop-nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	rec := th.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
