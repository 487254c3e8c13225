package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// connectionRepository is the PostgreSQL-backed implementation of
// [ConnectionRepository]. Only the encrypted password blob ever touches the
// database; plaintext handling stays in the service layer.
type connectionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConnectionRepository constructs a [ConnectionRepository] backed by the
// provided database connection and logger.
func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	logger.Debug().Msg("creating connection repository")
	return &connectionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveConnection persists a new source connection and returns it with
// server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *connectionRepository) SaveConnection(ctx context.Context, connection models.Connection) (models.Connection, error) {
	log := logger.FromContext(ctx)

	if connection.ID == uuid.Nil {
		connection.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, saveConnection,
		connection.ID, connection.ProjectCode, connection.Name, connection.SQLFlavor,
		connection.Host, connection.Port, connection.User, connection.EncryptedPassword)

	saved, err := scanConnection(row)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.SaveConnection").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Connection{}, ErrNameAlreadyExists
		default:
			return models.Connection{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindConnection retrieves one source connection by id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrConnectionNotFound].
func (r *connectionRepository) FindConnection(ctx context.Context, id uuid.UUID) (models.Connection, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findConnection, id)
	connection, err := scanConnection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Connection{}, ErrConnectionNotFound
		}

		log.Err(err).Str("func", "*connectionRepository.FindConnection").Msg("error: scanning error")
		return models.Connection{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return connection, nil
}

// ListConnections returns all source connections of one project ordered by
// name.
func (r *connectionRepository) ListConnections(ctx context.Context, projectCode string) ([]models.Connection, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listConnections, projectCode)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.ListConnections").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var connections []models.Connection
	for rows.Next() {
		connection, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning connection: %w", err)
		}
		connections = append(connections, connection)
	}

	return connections, rows.Err()
}

func scanConnection(row rowScanner) (models.Connection, error) {
	var connection models.Connection
	err := row.Scan(
		&connection.ID, &connection.ProjectCode, &connection.Name, &connection.SQLFlavor,
		&connection.Host, &connection.Port, &connection.User, &connection.EncryptedPassword,
		&connection.CreatedAt,
	)
	return connection, err
}
