package http

import (
	"github.com/copypasta/copypasta-server/internal/authgate"
	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/notifier"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/validators"
)

// Handler carries every dependency the HTTP surface needs. Handlers that
// touch more than one component acquire them in the order auth gate,
// store, notifier.
type Handler struct {
	gate      authgate.Gate
	store     *store.Store
	notifier  *notifier.Notifier
	validator validators.Validator

	clipboard config.Clipboard

	logger *logger.Logger
}

func NewHandler(gate authgate.Gate, st *store.Store, n *notifier.Notifier, cfg config.Clipboard, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gate:      gate,
		store:     st,
		notifier:  n,
		validator: validators.NewPasteValidator(),
		clipboard: cfg,
		logger:    logger,
	}
}
