package http

import (
	"context"
	"net/http"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/models"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, validates the token via
// [authgate.Gate.ValidateSession], and — on success — stores the
// authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 and {"error":"unauthorized"} when
// the cookie is absent, empty, or the token fails validation (bad
// signature, expired, or revoked by logout).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Err(ErrNoSessionCookie).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.gate.ValidateSession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session validation failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
