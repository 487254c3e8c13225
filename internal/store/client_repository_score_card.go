package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/models"
)

type localScoreCardRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalScoreCardRepository constructs the SQLite-backed scorecard cache.
func NewLocalScoreCardRepository(db *DB, logger *logger.Logger) LocalScoreCardRepository {
	return &localScoreCardRepository{
		DB:     db,
		logger: logger,
	}
}

// CacheScoreCard upserts one scorecard into the local cache. The full card is
// stored as a JSON payload; id, project code, and name are lifted into
// columns for lookup and ordering.
func (l *localScoreCardRepository) CacheScoreCard(ctx context.Context, card models.ScoreCard) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode scorecard (id=%s): %w", card.ID, err)
	}

	_, err = l.DB.ExecContext(ctx, upsertCachedScoreCard, card.ID, card.ProjectCode, card.Name, payload)
	if err != nil {
		log.Err(err).
			Str("func", "localScoreCardRepository.CacheScoreCard").
			Str("definition_id", card.ID).
			Msg("failed to execute upsert for cached scorecard")
		return fmt.Errorf("failed to cache scorecard (id=%s): %w", card.ID, err)
	}

	return nil
}

// GetCachedScoreCard returns the last synced card for one dashboard.
//
// Error handling:
//   - sql.ErrNoRows → [ErrDashboardNotFound].
func (l *localScoreCardRepository) GetCachedScoreCard(ctx context.Context, definitionID string) (models.ScoreCard, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	row := l.DB.QueryRowContext(ctx, getCachedScoreCard, definitionID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ScoreCard{}, ErrDashboardNotFound
		}

		log.Err(err).
			Str("func", "localScoreCardRepository.GetCachedScoreCard").
			Str("definition_id", definitionID).
			Msg("failed to scan cached scorecard row")
		return models.ScoreCard{}, fmt.Errorf("failed to scan cached scorecard row: %w", err)
	}

	var card models.ScoreCard
	if err := json.Unmarshal(payload, &card); err != nil {
		return models.ScoreCard{}, fmt.Errorf("failed to decode cached scorecard (id=%s): %w", definitionID, err)
	}

	return card, nil
}

// ListCachedScoreCards returns all cached cards of one project ordered by
// name.
func (l *localScoreCardRepository) ListCachedScoreCards(ctx context.Context, projectCode string) ([]models.ScoreCard, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listCachedScoreCards, projectCode)
	if err != nil {
		log.Err(err).
			Str("func", "localScoreCardRepository.ListCachedScoreCards").
			Str("project_code", projectCode).
			Msg("failed to execute query for cached scorecards")
		return nil, fmt.Errorf("failed to query cached scorecards: %w", err)
	}
	defer rows.Close()

	var cards []models.ScoreCard

	for rows.Next() {
		var payload []byte
		if scanErr := rows.Scan(&payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localScoreCardRepository.ListCachedScoreCards").
				Str("project_code", projectCode).
				Msg("failed to scan cached scorecard row")
			return nil, fmt.Errorf("failed to scan cached scorecard row: %w", scanErr)
		}

		var card models.ScoreCard
		if err = json.Unmarshal(payload, &card); err != nil {
			return nil, fmt.Errorf("failed to decode cached scorecard: %w", err)
		}

		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localScoreCardRepository.ListCachedScoreCards").
			Str("project_code", projectCode).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached scorecard rows: %w", rowsErr)
	}

	return cards, nil
}

// PurgeProject drops every cached card of one project.
func (l *localScoreCardRepository) PurgeProject(ctx context.Context, projectCode string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, purgeProjectCache, projectCode)
	if err != nil {
		log.Err(err).
			Str("func", "localScoreCardRepository.PurgeProject").
			Str("project_code", projectCode).
			Msg("failed to purge cached scorecards")
		return fmt.Errorf("failed to purge cached scorecards (project=%s): %w", projectCode, err)
	}

	return nil
}
