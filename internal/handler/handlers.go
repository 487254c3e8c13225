package handler

import (
	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/handler/http"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
