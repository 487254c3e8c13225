package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// FindProjectByCode retrieves the project whose project_code matches.
//
// Error handling:
//   - sql.ErrNoRows → [ErrProjectNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *projectRepository) FindProjectByCode(ctx context.Context, projectCode string) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	row := r.db.QueryRowContext(ctx, findProjectByCode, projectCode)
	if err := row.Scan(&project.ID, &project.ProjectCode, &project.ProjectName, &project.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.FindProjectByCode").Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return project, nil
}
