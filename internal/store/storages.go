package store

import "github.com/MKhiriev/testgen/internal/logger"

// Storages aggregates all repositories backed by the metadata database.
type Storages struct {
	ProjectRepository    ProjectRepository
	ScoreRepository      ScoreRepository
	ConnectionRepository ConnectionRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ProjectRepository:    NewProjectRepository(db, logger),
		ScoreRepository:      NewScoreRepository(db, logger),
		ConnectionRepository: NewConnectionRepository(db, logger),
	}
}
