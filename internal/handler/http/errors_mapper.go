package http

import (
	"errors"
	"net/http"

	"github.com/copypasta/copypasta-server/internal/authgate"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/internal/validators"
	"github.com/copypasta/copypasta-server/models"
)

var errorStatusMap = map[error]int{
	authgate.ErrInvalidCredentials: http.StatusBadRequest,
	authgate.ErrSessionInvalid:     http.StatusUnauthorized,

	store.ErrUsernameTaken:        http.StatusConflict,
	store.ErrAuthFailed:           http.StatusUnauthorized,
	store.ErrBadCredentialsFormat: http.StatusBadRequest,
	store.ErrStore:                http.StatusInternalServerError,

	validators.ErrInvalidContentType:  http.StatusBadRequest,
	validators.ErrEmptyText:           http.StatusBadRequest,
	validators.ErrInvalidImage:        http.StatusBadRequest,
	validators.ErrRichContentTooLarge: http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes an ErrorResponse body.
// Persistence and other unclassified errors are surfaced opaquely; their
// details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// isAuthFailure reports whether err means the supplied credentials were
// rejected, either because they were wrong or because the username or
// password was empty, as opposed to a store failure.
func isAuthFailure(err error) bool {
	return errors.Is(err, store.ErrAuthFailed) || errors.Is(err, authgate.ErrInvalidCredentials)
}
