package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: router,

			// Only the read of the header is bounded here. A write timeout
			// would cut off long polls, which legitimately hold the
			// response open for up to the poll ceiling.
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
