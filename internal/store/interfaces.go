package store

import (
	"context"

	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProjectRepository looks up projects in the metadata database.
type ProjectRepository interface {
	// FindProjectByCode returns the project with the given code or
	// ErrProjectNotFound.
	FindProjectByCode(ctx context.Context, projectCode string) (models.Project, error)
}

// ScoreRepository persists score definitions (dashboards) and computes their
// scores from the latest column scoring data.
type ScoreRepository interface {
	CreateDefinition(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error)
	FindDefinition(ctx context.Context, id uuid.UUID) (models.Dashboard, error)
	ListDefinitions(ctx context.Context, filter models.DashboardListFilter) ([]models.Dashboard, error)
	UpdateDefinition(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error)
	DeleteDefinition(ctx context.Context, id uuid.UUID) error

	// FreshResults computes the dashboard's score rows from the latest
	// column scoring data, honoring the definition's criteria filters.
	FreshResults(ctx context.Context, dashboard models.Dashboard) ([]models.CategoryResult, error)

	// CachedResults returns the score rows last saved by SaveResults.
	CachedResults(ctx context.Context, id uuid.UUID) ([]models.CategoryResult, error)

	// SaveResults replaces the cached score rows of one definition.
	SaveResults(ctx context.Context, id uuid.UUID, results []models.CategoryResult) error

	// AppendHistory records history entries for trend graphs.
	AppendHistory(ctx context.Context, id uuid.UUID, entries []models.HistoryEntry) error

	// History returns up to limit most recent history entries, oldest first.
	History(ctx context.Context, id uuid.UUID, limit int) ([]models.HistoryEntry, error)

	// Breakdown groups the dashboard's issues and scores by the query's
	// group-by column.
	Breakdown(ctx context.Context, dashboard models.Dashboard, query models.BreakdownQuery) ([]models.BreakdownItem, error)

	// Issues lists the individual issues behind one breakdown row.
	Issues(ctx context.Context, dashboard models.Dashboard, query models.IssueQuery) ([]models.IssueItem, error)

	// CategoryValues returns the distinct values present for every
	// filterable field in one project.
	CategoryValues(ctx context.Context, projectCode string) (map[string][]string, error)

	// ColumnHierarchy returns the table-group / table / column tree of one
	// project.
	ColumnHierarchy(ctx context.Context, projectCode string) ([]models.ColumnHierarchy, error)
}

// ConnectionRepository persists source-database connections. Passwords are
// stored encrypted; encryption happens in the service layer.
type ConnectionRepository interface {
	SaveConnection(ctx context.Context, connection models.Connection) (models.Connection, error)
	FindConnection(ctx context.Context, id uuid.UUID) (models.Connection, error)
	ListConnections(ctx context.Context, projectCode string) ([]models.Connection, error)
}
