package store

import (
	"context"

	"github.com/MKhiriev/testgen/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalScoreCardRepository is the CLI's local scorecard cache. Cards fetched
// from the API are kept in an SQLite file so the CLI can show the last known
// scores while offline.
type LocalScoreCardRepository interface {
	CacheScoreCard(ctx context.Context, card models.ScoreCard) error
	GetCachedScoreCard(ctx context.Context, definitionID string) (models.ScoreCard, error)
	ListCachedScoreCards(ctx context.Context, projectCode string) ([]models.ScoreCard, error)
	PurgeProject(ctx context.Context, projectCode string) error
}
