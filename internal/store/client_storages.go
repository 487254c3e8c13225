package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the CLI. Currently it holds only
// [LocalScoreCardRepository].
type ClientStorages struct {
	// ScoreCardRepository is the SQLite-backed cache of scorecards fetched
	// from the API.
	ScoreCardRepository LocalScoreCardRepository
}

// NewClientStorages initialises the client storage layer: it opens (or
// creates) the SQLite cache file named in cfg.DSN, ensures the schema exists,
// and wires a fresh [LocalScoreCardRepository].
func NewClientStorages(cfg config.ClientDB, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		ScoreCardRepository: NewLocalScoreCardRepository(db, logger),
	}, nil
}
