package workers

import (
	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. With a zero
// refresh interval the score refresher is left out and the aggregate is
// empty.
func NewWorkers(services *service.Services, cfg config.WorkersConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ScoreRefreshInterval > 0 {
		w.workers = append(w.workers, NewScoreRefresher(services.ScoreService, cfg.ScoreRefreshInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
