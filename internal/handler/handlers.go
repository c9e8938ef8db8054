package handler

import (
	"github.com/copypasta/copypasta-server/internal/authgate"
	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/handler/http"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/notifier"
	"github.com/copypasta/copypasta-server/internal/store"
)

// Handlers aggregates the transport handlers the server runs. HTTP is the
// only transport the clipboard relay speaks.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(gate authgate.Gate, st *store.Store, n *notifier.Notifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(gate, st, n, cfg.Clipboard, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
