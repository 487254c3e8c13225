// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the testgen server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]). Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/testgen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the testgen
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against the server with the operator credentials.
	// On success it stores the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) error

	// ListScoreCards fetches the scorecards of one project.
	ListScoreCards(ctx context.Context, projectCode string) ([]models.ScoreCard, error)

	// GetScoreCard fetches one scorecard by dashboard id.
	GetScoreCard(ctx context.Context, id string) (models.ScoreCard, error)

	// Recalculate triggers a score refresh of one dashboard and returns the
	// refreshed card.
	Recalculate(ctx context.Context, id string) (models.RecalculateResponse, error)
}
