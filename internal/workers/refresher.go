// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/service"
)

// scoreRefresher periodically recalculates every dashboard so cached scores
// track the latest profiling and test runs without manual refreshes.
type scoreRefresher struct {
	scoreService service.ScoreService
	interval     time.Duration
	logger       *logger.Logger
}

// NewScoreRefresher constructs a score refresh worker that runs every
// interval.
func NewScoreRefresher(scoreService service.ScoreService, interval time.Duration, logger *logger.Logger) Worker {
	return &scoreRefresher{
		scoreService: scoreService,
		interval:     interval,
		logger:       logger,
	}
}

// Run starts the refresh loop in a background goroutine and returns
// immediately.
func (s *scoreRefresher) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("starting score refresh worker")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			s.refresh()
		}
	}()
}

func (s *scoreRefresher) refresh() {
	ctx := s.logger.WithContext(context.Background())

	start := time.Now()
	if err := s.scoreService.RefreshAllScores(ctx); err != nil {
		s.logger.Err(err).Msg("score refresh run ended with error")
		return
	}

	s.logger.Info().Dur("duration", time.Since(start)).Msg("score refresh run finished")
}
