// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/testgen/internal/service"
	"github.com/MKhiriev/testgen/internal/store"
	"github.com/MKhiriev/testgen/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

// withDashboardID injects the dashboardID route parameter the way the chi
// router would.
func withDashboardID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("dashboardID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func stubScoreCard(id uuid.UUID) models.ScoreCard {
	score := "94.6"
	return models.ScoreCard{
		ID:          id.String(),
		ProjectCode: "DEFAULT",
		Name:        "Warehouse quality",
		Score:       &score,
		Categories:  []models.CategoryScore{},
		History:     []models.HistoryEntry{},
	}
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListDashboards_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		ListScoreCards(gomock.Any(), models.DashboardListFilter{
			ProjectCode: "DEFAULT",
			NameFilter:  "qual",
			SortedBy:    "created_at",
		}).
		Return([]models.ScoreCard{stubScoreCard(id)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/?project_code=DEFAULT&name_filter=qual&sorted_by=created_at", nil)
	rec := httptest.NewRecorder()

	h.listDashboards(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var cards []models.ScoreCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, id.String(), cards[0].ID)
}

// TestListDashboards_Empty verifies the handler responds with an empty JSON
// array, never null.
func TestListDashboards_Empty(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		ListScoreCards(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/", nil)
	rec := httptest.NewRecorder()

	h.listDashboards(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestListDashboards_ProjectNotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		ListScoreCards(gomock.Any(), gomock.Any()).
		Return(nil, store.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/?project_code=MISSING", nil)
	rec := httptest.NewRecorder()

	h.listDashboards(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateDashboard_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	dashboard := models.Dashboard{
		ProjectCode: "DEFAULT",
		Name:        "Warehouse quality",
		TotalScore:  true,
	}
	mocks.scores.EXPECT().
		CreateDashboard(gomock.Any(), dashboard).
		Return(stubScoreCard(id), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/data-quality/dashboards/", strings.NewReader(jsonBody(t, dashboard)))
	rec := httptest.NewRecorder()

	h.createDashboard(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var card models.ScoreCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, id.String(), card.ID)
}

func TestCreateDashboard_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/data-quality/dashboards/", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.createDashboard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDashboard_ValidationError(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		CreateDashboard(gomock.Any(), gomock.Any()).
		Return(models.ScoreCard{}, service.ErrValidationNoScores)

	req := httptest.NewRequest(http.MethodPost, "/api/data-quality/dashboards/", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()

	h.createDashboard(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrValidationNoScores.Error())
}

func TestCreateDashboard_DuplicateName(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		CreateDashboard(gomock.Any(), gomock.Any()).
		Return(models.ScoreCard{}, store.ErrNameAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/data-quality/dashboards/", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()

	h.createDashboard(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// get / definition
// ─────────────────────────────────────────────

func TestGetScoreCard_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		GetScoreCard(gomock.Any(), id).
		Return(stubScoreCard(id), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/", nil)
	rec := httptest.NewRecorder()

	h.getScoreCard(rec, withDashboardID(req, id.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var card models.ScoreCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	require.NotNil(t, card.Score)
	assert.Equal(t, "94.6", *card.Score)
}

func TestGetScoreCard_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/not-a-uuid/", nil)
	rec := httptest.NewRecorder()

	h.getScoreCard(rec, withDashboardID(req, "not-a-uuid"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid dashboard id")
}

func TestGetScoreCard_NotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		GetScoreCard(gomock.Any(), id).
		Return(models.ScoreCard{}, store.ErrDashboardNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/", nil)
	rec := httptest.NewRecorder()

	h.getScoreCard(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDashboardDefinition_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		GetDashboard(gomock.Any(), id).
		Return(models.Dashboard{ID: id, Name: "Warehouse quality", TotalScore: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/definition", nil)
	rec := httptest.NewRecorder()

	h.getDashboardDefinition(rec, withDashboardID(req, id.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, "Warehouse quality", dashboard.Name)
	assert.True(t, dashboard.TotalScore)
}

// ─────────────────────────────────────────────
// update / delete
// ─────────────────────────────────────────────

func TestUpdateDashboard_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	name := "Renamed"
	mocks.scores.EXPECT().
		UpdateDashboard(gomock.Any(), id, models.DashboardUpdate{Name: &name}).
		Return(stubScoreCard(id), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/data-quality/dashboards/"+id.String()+"/", strings.NewReader(`{"name":"Renamed"}`))
	rec := httptest.NewRecorder()

	h.updateDashboard(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDashboard_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/data-quality/dashboards/"+id.String()+"/", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.updateDashboard(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteDashboard_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		DeleteDashboard(gomock.Any(), id).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/data-quality/dashboards/"+id.String()+"/", nil)
	rec := httptest.NewRecorder()

	h.deleteDashboard(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteDashboard_NotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		DeleteDashboard(gomock.Any(), id).
		Return(store.ErrDashboardNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/data-quality/dashboards/"+id.String()+"/", nil)
	rec := httptest.NewRecorder()

	h.deleteDashboard(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// recalculate
// ─────────────────────────────────────────────

func TestRecalculateDashboard_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		Recalculate(gomock.Any(), id).
		Return(models.RecalculateResponse{
			Message:   "Scores calculated successfully.",
			Dashboard: stubScoreCard(id),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/data-quality/dashboards/"+id.String()+"/recalculate", nil)
	rec := httptest.NewRecorder()

	h.recalculateDashboard(rec, withDashboardID(req, id.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.RecalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Scores calculated successfully.", response.Message)
}

// ─────────────────────────────────────────────
// breakdown / issues
// ─────────────────────────────────────────────

func TestGetBreakdown_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		Breakdown(gomock.Any(), models.BreakdownQuery{
			DefinitionID: id,
			ScoreType:    "score",
			GroupBy:      "table_name",
		}).
		Return([]models.BreakdownItem{
			{Category: "table_name", Value: "orders", Impact: "12.5%", Score: "88.2", IssueCt: 42},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/breakdown?score_type=score&group_by=table_name", nil)
	rec := httptest.NewRecorder()

	h.getBreakdown(rec, withDashboardID(req, id.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.BreakdownItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "orders", items[0].Value)
	assert.EqualValues(t, 42, items[0].IssueCt)
}

func TestGetBreakdown_UnknownGroupBy(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		Breakdown(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrValidationUnknownGroupBy)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/breakdown?score_type=score&group_by=nope", nil)
	rec := httptest.NewRecorder()

	h.getBreakdown(rec, withDashboardID(req, id.String()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIssues_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	id := uuid.New()
	mocks.scores.EXPECT().
		Issues(gomock.Any(), models.IssueQuery{
			DefinitionID: id,
			ScoreType:    "cde_score",
			GroupBy:      "table_name",
			Value:        "orders",
		}).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/"+id.String()+"/issues?score_type=cde_score&group_by=table_name&value=orders", nil)
	rec := httptest.NewRecorder()

	h.getIssues(rec, withDashboardID(req, id.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

// ─────────────────────────────────────────────
// filter options
// ─────────────────────────────────────────────

// TestFilterOptions_DefaultsToAllSections verifies that a request naming no
// include_* parameters asks for every section, matching the API contract
// where each flag defaults to true.
func TestFilterOptions_DefaultsToAllSections(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		FilterOptions(gomock.Any(), models.FilterOptionsQuery{
			ProjectCode:                 "DEFAULT",
			IncludeFilterValues:         true,
			IncludeColumns:              true,
			IncludeCategoryOptions:      true,
			IncludeScoreGroupingOptions: true,
			IncludeScoreTypeOptions:     true,
		}).
		Return(models.FilterOptions{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/filter-options?project_code=DEFAULT", nil)
	rec := httptest.NewRecorder()

	h.filterOptions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestFilterOptions_FlagsParsed verifies explicit flags: "false" and "0"
// disable a section, anything else keeps it enabled.
func TestFilterOptions_FlagsParsed(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		FilterOptions(gomock.Any(), models.FilterOptionsQuery{
			ProjectCode:                 "DEFAULT",
			IncludeFilterValues:         true,
			IncludeColumns:              false,
			IncludeCategoryOptions:      false,
			IncludeScoreGroupingOptions: true,
			IncludeScoreTypeOptions:     true,
		}).
		Return(models.FilterOptions{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/data-quality/filter-options?project_code=DEFAULT&include_filter_values=true&include_columns=false&include_category_options=0&include_score_type_options=1", nil)
	rec := httptest.NewRecorder()

	h.filterOptions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFilterOptions_ProjectNotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.scores.EXPECT().
		FilterOptions(gomock.Any(), gomock.Any()).
		Return(models.FilterOptions{}, store.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/filter-options?project_code=MISSING", nil)
	rec := httptest.NewRecorder()

	h.filterOptions(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
