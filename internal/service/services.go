package service

import (
	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/crypto"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/store"
)

type Services struct {
	AuthService       AuthService
	ScoreService      ScoreService
	ConnectionService ConnectionService
}

func NewServices(storages *store.Storages, cipher crypto.SecretCipher, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(cfg.UI, cfg.Auth, logger),
		ScoreService:      NewScoreService(storages.ScoreRepository, storages.ProjectRepository, logger),
		ConnectionService: NewConnectionService(storages.ConnectionRepository, cipher, logger),
	}
}
