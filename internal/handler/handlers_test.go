package handler

import (
	"testing"

	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTPAddressSet(t *testing.T) {
	cfg := config.ServerConfig{
		HTTPAddress: ":8080",
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddresses verifies that an empty server configuration
// yields an error instead of a Handlers value with nothing inside.
func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.ServerConfig{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
