// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/store"
	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
)

// historyLimit caps how many history entries a scorecard carries for its
// trend graph.
const historyLimit = 50

// scoreService is the concrete implementation of ScoreService. It validates
// dashboard definitions, delegates persistence and score aggregation to the
// ScoreRepository, and assembles scorecards from cached results.
type scoreService struct {
	scoreRepository   store.ScoreRepository
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewScoreService constructs a ScoreService wired to the given repositories.
func NewScoreService(scoreRepository store.ScoreRepository, projectRepository store.ProjectRepository, logger *logger.Logger) ScoreService {
	return &scoreService{
		scoreRepository:   scoreRepository,
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// CreateDashboard validates and persists a new dashboard, calculates its
// initial scores, and returns the rendered scorecard.
//
// Returns:
//   - A validation error if the definition is malformed.
//   - store.ErrProjectNotFound if the project code is unknown.
//   - store.ErrNameAlreadyExists if the name is taken within the project.
func (s *scoreService) CreateDashboard(ctx context.Context, dashboard models.Dashboard) (models.ScoreCard, error) {
	log := logger.FromContext(ctx)

	if err := validateDashboard(dashboard); err != nil {
		log.Error().Err(err).Str("name", dashboard.Name).Msg("invalid dashboard definition")
		return models.ScoreCard{}, err
	}

	if _, err := s.projectRepository.FindProjectByCode(ctx, dashboard.ProjectCode); err != nil {
		return models.ScoreCard{}, err
	}

	saved, err := s.scoreRepository.CreateDefinition(ctx, dashboard)
	if err != nil {
		log.Err(err).Str("name", dashboard.Name).Msg("dashboard creation ended with error")
		return models.ScoreCard{}, err
	}

	if err := s.refreshScores(ctx, saved); err != nil {
		return models.ScoreCard{}, err
	}

	return s.buildScoreCard(ctx, saved)
}

// GetDashboard returns the raw definition of one dashboard, as needed by the
// dashboard editor.
func (s *scoreService) GetDashboard(ctx context.Context, id uuid.UUID) (models.Dashboard, error) {
	return s.scoreRepository.FindDefinition(ctx, id)
}

// GetScoreCard returns the rendered scorecard of one dashboard from its
// cached scores.
func (s *scoreService) GetScoreCard(ctx context.Context, id uuid.UUID) (models.ScoreCard, error) {
	dashboard, err := s.scoreRepository.FindDefinition(ctx, id)
	if err != nil {
		return models.ScoreCard{}, err
	}

	return s.buildScoreCard(ctx, dashboard)
}

// ListScoreCards returns the scorecards matching filter. When the filter
// names a project, the project must exist.
func (s *scoreService) ListScoreCards(ctx context.Context, filter models.DashboardListFilter) ([]models.ScoreCard, error) {
	if filter.ProjectCode != "" {
		if _, err := s.projectRepository.FindProjectByCode(ctx, filter.ProjectCode); err != nil {
			return nil, err
		}
	}

	dashboards, err := s.scoreRepository.ListDefinitions(ctx, filter)
	if err != nil {
		return nil, err
	}

	cards := make([]models.ScoreCard, 0, len(dashboards))
	for _, dashboard := range dashboards {
		card, err := s.buildScoreCard(ctx, dashboard)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// UpdateDashboard applies a partial update to an existing definition,
// recalculates its scores, and returns the refreshed scorecard.
func (s *scoreService) UpdateDashboard(ctx context.Context, id uuid.UUID, update models.DashboardUpdate) (models.ScoreCard, error) {
	log := logger.FromContext(ctx)

	dashboard, err := s.scoreRepository.FindDefinition(ctx, id)
	if err != nil {
		return models.ScoreCard{}, err
	}

	applyUpdate(&dashboard, update)

	if err := validateDashboard(dashboard); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("invalid dashboard update")
		return models.ScoreCard{}, err
	}

	saved, err := s.scoreRepository.UpdateDefinition(ctx, dashboard)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("dashboard update ended with error")
		return models.ScoreCard{}, err
	}

	if err := s.refreshScores(ctx, saved); err != nil {
		return models.ScoreCard{}, err
	}

	return s.buildScoreCard(ctx, saved)
}

// DeleteDashboard removes a definition together with its cached scores and
// history.
func (s *scoreService) DeleteDashboard(ctx context.Context, id uuid.UUID) error {
	return s.scoreRepository.DeleteDefinition(ctx, id)
}

// Recalculate refreshes the dashboard's cached scores from the latest column
// scoring data, records the run in history, and returns the refreshed card.
func (s *scoreService) Recalculate(ctx context.Context, id uuid.UUID) (models.RecalculateResponse, error) {
	dashboard, err := s.scoreRepository.FindDefinition(ctx, id)
	if err != nil {
		return models.RecalculateResponse{}, err
	}

	if err := s.refreshScores(ctx, dashboard); err != nil {
		return models.RecalculateResponse{}, err
	}

	card, err := s.buildScoreCard(ctx, dashboard)
	if err != nil {
		return models.RecalculateResponse{}, err
	}

	return models.RecalculateResponse{
		Message:   "Scores calculated successfully.",
		Dashboard: card,
	}, nil
}

// RefreshAllScores recalculates every dashboard. A failing dashboard is
// logged and skipped so one broken definition does not starve the rest.
func (s *scoreService) RefreshAllScores(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dashboards, err := s.scoreRepository.ListDefinitions(ctx, models.DashboardListFilter{})
	if err != nil {
		return fmt.Errorf("error listing dashboards for refresh: %w", err)
	}

	var failed int
	for _, dashboard := range dashboards {
		if err := s.refreshScores(ctx, dashboard); err != nil {
			log.Err(err).
				Str("id", dashboard.ID.String()).
				Str("name", dashboard.Name).
				Msg("dashboard refresh ended with error")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("refresh failed for %d of %d dashboards", failed, len(dashboards))
	}

	return nil
}

// Breakdown groups the dashboard's issues and scores by the query's group-by
// column.
func (s *scoreService) Breakdown(ctx context.Context, query models.BreakdownQuery) ([]models.BreakdownItem, error) {
	query.GroupBy = models.NormalizeGroupBy(query.GroupBy)
	if !models.IsValidGroupBy(query.GroupBy) {
		return nil, fmt.Errorf("%w: %q", ErrValidationUnknownGroupBy, query.GroupBy)
	}
	if !models.IsValidScoreType(query.ScoreType) {
		return nil, fmt.Errorf("%w: %q", ErrValidationUnknownScoreType, query.ScoreType)
	}

	dashboard, err := s.scoreRepository.FindDefinition(ctx, query.DefinitionID)
	if err != nil {
		return nil, err
	}

	return s.scoreRepository.Breakdown(ctx, dashboard, query)
}

// Issues lists the individual issues behind one breakdown row.
func (s *scoreService) Issues(ctx context.Context, query models.IssueQuery) ([]models.IssueItem, error) {
	query.GroupBy = models.NormalizeGroupBy(query.GroupBy)
	if !models.IsValidGroupBy(query.GroupBy) {
		return nil, fmt.Errorf("%w: %q", ErrValidationUnknownGroupBy, query.GroupBy)
	}
	if !models.IsValidScoreType(query.ScoreType) {
		return nil, fmt.Errorf("%w: %q", ErrValidationUnknownScoreType, query.ScoreType)
	}

	dashboard, err := s.scoreRepository.FindDefinition(ctx, query.DefinitionID)
	if err != nil {
		return nil, err
	}

	return s.scoreRepository.Issues(ctx, dashboard, query)
}

// FilterOptions assembles the option lists the dashboard editor requests:
// the filterable fields with their present values, the column tree, and the
// fixed category, grouping, and score-type option lists. Sections the query
// does not ask for stay empty.
func (s *scoreService) FilterOptions(ctx context.Context, query models.FilterOptionsQuery) (models.FilterOptions, error) {
	if _, err := s.projectRepository.FindProjectByCode(ctx, query.ProjectCode); err != nil {
		return models.FilterOptions{}, err
	}

	var options models.FilterOptions

	if query.IncludeFilterValues {
		values, err := s.scoreRepository.CategoryValues(ctx, query.ProjectCode)
		if err != nil {
			return models.FilterOptions{}, err
		}
		options.FilterFieldsMetadata = labeledFields(models.FilterFields)
		options.FilterValues = values
	}

	if query.IncludeColumns {
		columns, err := s.scoreRepository.ColumnHierarchy(ctx, query.ProjectCode)
		if err != nil {
			return models.FilterOptions{}, err
		}
		options.Columns = columns
	}

	if query.IncludeCategoryOptions {
		options.CategoryOptions = labeledValues(models.CategoryFields)
	}

	if query.IncludeScoreGroupingOptions {
		options.ScoreGroupingOptions = labeledValues(models.GroupByCategories)
	}

	if query.IncludeScoreTypeOptions {
		options.ScoreTypeOptions = []models.LabeledValue{
			{Value: models.ScoreTypeTotal, Label: "Total Score"},
			{Value: models.ScoreTypeCDE, Label: "CDE Score"},
		}
	}

	return options, nil
}

// refreshScores computes fresh score rows for one dashboard, replaces its
// cached results, and appends the total and CDE scores to history.
func (s *scoreService) refreshScores(ctx context.Context, dashboard models.Dashboard) error {
	results, err := s.scoreRepository.FreshResults(ctx, dashboard)
	if err != nil {
		return fmt.Errorf("error calculating scores: %w", err)
	}

	if err := s.scoreRepository.SaveResults(ctx, dashboard.ID, results); err != nil {
		return fmt.Errorf("error saving scores: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var entries []models.HistoryEntry
	for _, result := range results {
		if result.Category != models.ScoreTypeTotal && result.Category != models.ScoreTypeCDE {
			continue
		}
		entries = append(entries, models.HistoryEntry{
			Score:    result.Score,
			Category: result.Category,
			Time:     now,
		})
	}

	if len(entries) > 0 {
		if err := s.scoreRepository.AppendHistory(ctx, dashboard.ID, entries); err != nil {
			return fmt.Errorf("error appending score history: %w", err)
		}
	}

	return nil
}

// buildScoreCard renders one dashboard into its scorecard form from cached
// results and history.
func (s *scoreService) buildScoreCard(ctx context.Context, dashboard models.Dashboard) (models.ScoreCard, error) {
	results, err := s.scoreRepository.CachedResults(ctx, dashboard.ID)
	if err != nil {
		return models.ScoreCard{}, err
	}

	history, err := s.scoreRepository.History(ctx, dashboard.ID, historyLimit)
	if err != nil {
		return models.ScoreCard{}, err
	}

	card := models.ScoreCard{
		ID:          dashboard.ID.String(),
		ProjectCode: dashboard.ProjectCode,
		Name:        dashboard.Name,
		History:     history,
		Categories:  []models.CategoryScore{},
	}
	if dashboard.Category != "" {
		card.CategoriesLabel = models.CategoryLabel(dashboard.Category)
	}

	for _, result := range results {
		formatted := models.FormatScore(result.Score)

		switch {
		case result.Category == models.ScoreTypeTotal:
			card.Score = &formatted
		case result.Category == models.ScoreTypeCDE:
			card.CDEScore = &formatted
		case result.Category == "profiling_score":
			card.ProfilingScore = &formatted
		case result.Category == "testing_score":
			card.TestingScore = &formatted
		case strings.HasPrefix(result.Category, store.CategoryResultPrefix):
			card.Categories = append(card.Categories, models.CategoryScore{
				Label: strings.TrimPrefix(result.Category, store.CategoryResultPrefix),
				Score: &formatted,
			})
		}
	}

	return card, nil
}

func labeledFields(fields []string) []models.LabeledField {
	labeled := make([]models.LabeledField, 0, len(fields))
	for _, field := range fields {
		labeled = append(labeled, models.LabeledField{Field: field, Label: models.CategoryLabel(field)})
	}
	return labeled
}

func labeledValues(values []string) []models.LabeledValue {
	labeled := make([]models.LabeledValue, 0, len(values))
	for _, value := range values {
		labeled = append(labeled, models.LabeledValue{Value: value, Label: models.CategoryLabel(value)})
	}
	return labeled
}
