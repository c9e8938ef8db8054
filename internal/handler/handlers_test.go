package handler

import (
	"testing"

	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// TestNewHandlers_HTTPAddress verifies that when HTTPAddress is
// configured, the HTTP handler is initialised and no error is returned.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(nil, nil, notifier.New(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that when HTTPAddress is empty,
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}

	h, err := NewHandlers(nil, nil, notifier.New(), cfg, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to
// NewHandlers produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h1, err1 := NewHandlers(nil, nil, notifier.New(), cfg, newTestLogger())
	h2, err2 := NewHandlers(nil, nil, notifier.New(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
