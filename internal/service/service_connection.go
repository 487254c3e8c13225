package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/testgen/internal/crypto"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/store"
	"github.com/MKhiriev/testgen/models"
	"github.com/google/uuid"
)

// connectionService is the concrete implementation of ConnectionService.
// Connection passwords are encrypted with the secret cipher before they reach
// the store; the plaintext never touches the metadata database.
type connectionService struct {
	connectionRepository store.ConnectionRepository
	cipher               crypto.SecretCipher
	logger               *logger.Logger
}

// NewConnectionService constructs a ConnectionService wired to the given
// repository and cipher.
func NewConnectionService(connectionRepository store.ConnectionRepository, cipher crypto.SecretCipher, logger *logger.Logger) ConnectionService {
	return &connectionService{
		connectionRepository: connectionRepository,
		cipher:               cipher,
		logger:               logger,
	}
}

// CreateConnection encrypts the connection password and persists the
// connection. The returned value carries no password in either form.
//
// Returns:
//   - ErrInvalidDataProvided if required fields are missing.
//   - store.ErrNameAlreadyExists if the name is taken within the project.
func (c *connectionService) CreateConnection(ctx context.Context, connection models.Connection) (models.Connection, error) {
	log := logger.FromContext(ctx)

	if connection.ProjectCode == "" || connection.Name == "" || connection.Host == "" {
		log.Error().Str("name", connection.Name).Msg("invalid connection data provided")
		return models.Connection{}, ErrInvalidDataProvided
	}

	encrypted, err := c.cipher.EncryptText(connection.Password)
	if err != nil {
		return models.Connection{}, fmt.Errorf("error encrypting connection password: %w", err)
	}
	connection.Password = ""
	connection.EncryptedPassword = encrypted

	saved, err := c.connectionRepository.SaveConnection(ctx, connection)
	if err != nil {
		log.Err(err).Str("name", connection.Name).Msg("connection creation ended with error")
		return models.Connection{}, err
	}

	saved.EncryptedPassword = ""
	return saved, nil
}

// GetConnection returns one connection with its password decrypted, as
// needed to open a session against the source database.
func (c *connectionService) GetConnection(ctx context.Context, id uuid.UUID) (models.Connection, error) {
	log := logger.FromContext(ctx)

	connection, err := c.connectionRepository.FindConnection(ctx, id)
	if err != nil {
		return models.Connection{}, err
	}

	password, err := c.cipher.DecryptText(connection.EncryptedPassword)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("error decrypting connection password")
		return models.Connection{}, fmt.Errorf("error decrypting connection password: %w", err)
	}

	connection.Password = password
	connection.EncryptedPassword = ""
	return connection, nil
}

// ListConnections returns the project's connections without passwords.
func (c *connectionService) ListConnections(ctx context.Context, projectCode string) ([]models.Connection, error) {
	connections, err := c.connectionRepository.ListConnections(ctx, projectCode)
	if err != nil {
		return nil, err
	}

	for i := range connections {
		connections[i].EncryptedPassword = ""
	}

	return connections, nil
}
