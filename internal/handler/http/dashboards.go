// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/utils"
	"github.com/MKhiriev/testgen/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listDashboards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := models.DashboardListFilter{
		ProjectCode: r.URL.Query().Get("project_code"),
		NameFilter:  r.URL.Query().Get("name_filter"),
		SortedBy:    r.URL.Query().Get("sorted_by"),
	}

	cards, err := h.services.ScoreService.ListScoreCards(ctx, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.ScoreCard{}
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) createDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dashboard models.Dashboard
	if err := json.NewDecoder(r.Body).Decode(&dashboard); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	card, err := h.services.ScoreService.CreateDashboard(ctx, dashboard)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) getScoreCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	card, err := h.services.ScoreService.GetScoreCard(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) getDashboardDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	dashboard, err := h.services.ScoreService.GetDashboard(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) updateDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	var update models.DashboardUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	card, err := h.services.ScoreService.UpdateDashboard(ctx, id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) deleteDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	if err := h.services.ScoreService.DeleteDashboard(ctx, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recalculateDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	response, err := h.services.ScoreService.Recalculate(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	query := models.BreakdownQuery{
		DefinitionID: id,
		ScoreType:    r.URL.Query().Get("score_type"),
		GroupBy:      r.URL.Query().Get("group_by"),
	}

	items, err := h.services.ScoreService.Breakdown(ctx, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.BreakdownItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getIssues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := dashboardID(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	query := models.IssueQuery{
		DefinitionID: id,
		ScoreType:    r.URL.Query().Get("score_type"),
		GroupBy:      r.URL.Query().Get("group_by"),
		Value:        r.URL.Query().Get("value"),
	}

	items, err := h.services.ScoreService.Issues(ctx, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.IssueItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := r.URL.Query()
	query := models.FilterOptionsQuery{
		ProjectCode:                 params.Get("project_code"),
		IncludeFilterValues:         queryFlag(params, "include_filter_values"),
		IncludeColumns:              queryFlag(params, "include_columns"),
		IncludeCategoryOptions:      queryFlag(params, "include_category_options"),
		IncludeScoreGroupingOptions: queryFlag(params, "include_score_grouping_options"),
		IncludeScoreTypeOptions:     queryFlag(params, "include_score_type_options"),
	}

	options, err := h.services.ScoreService.FilterOptions(ctx, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

// dashboardID parses the dashboard identifier from the route.
func dashboardID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "dashboardID"))
}

// queryFlag interprets an include_* query parameter. An absent parameter
// enables the section; only an explicit "false" or "0" disables it.
func queryFlag(params url.Values, name string) bool {
	if !params.Has(name) {
		return true
	}

	value := params.Get(name)
	return value != "false" && value != "0"
}
