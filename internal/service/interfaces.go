package service

import (
	"context"

	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ScoreService owns the lifecycle of quality dashboards: definition CRUD,
// score calculation, breakdowns, and the filter metadata the dashboard editor
// needs.
type ScoreService interface {
	CreateDashboard(ctx context.Context, dashboard models.Dashboard) (models.ScoreCard, error)
	GetDashboard(ctx context.Context, id uuid.UUID) (models.Dashboard, error)
	GetScoreCard(ctx context.Context, id uuid.UUID) (models.ScoreCard, error)
	ListScoreCards(ctx context.Context, filter models.DashboardListFilter) ([]models.ScoreCard, error)
	UpdateDashboard(ctx context.Context, id uuid.UUID, update models.DashboardUpdate) (models.ScoreCard, error)
	DeleteDashboard(ctx context.Context, id uuid.UUID) error

	// Recalculate refreshes the dashboard's cached scores from the latest
	// column scoring data and records the run in history.
	Recalculate(ctx context.Context, id uuid.UUID) (models.RecalculateResponse, error)

	// RefreshAllScores recalculates every dashboard. Used by the background
	// score-refresh worker.
	RefreshAllScores(ctx context.Context) error

	Breakdown(ctx context.Context, query models.BreakdownQuery) ([]models.BreakdownItem, error)
	Issues(ctx context.Context, query models.IssueQuery) ([]models.IssueItem, error)
	FilterOptions(ctx context.Context, query models.FilterOptionsQuery) (models.FilterOptions, error)
}

// ConnectionService manages source-database connections. Passwords are
// encrypted before they reach the store and decrypted only on explicit read.
type ConnectionService interface {
	CreateConnection(ctx context.Context, connection models.Connection) (models.Connection, error)
	GetConnection(ctx context.Context, id uuid.UUID) (models.Connection, error)
	ListConnections(ctx context.Context, projectCode string) ([]models.Connection, error)
}

// AuthService authenticates the operator account and manages the JWT token
// lifecycle.
type AuthService interface {
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
