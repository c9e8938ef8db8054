package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/models"
)

// sessionCookieName is the cookie the session token rides in. HTTP-only,
// path=/, Secure when serving over TLS.
const sessionCookieName = "session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid form"}, http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	_, token, err := h.gate.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Str("username", username).Msg("username already taken")
		case errors.Is(err, store.ErrBadCredentialsFormat):
			log.Err(err).Msg("credentials do not meet requirements")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
		}
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, r, token.SignedString)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid form"}, http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	user, token, err := h.gate.Login(ctx, username, password)
	if err != nil {
		if isAuthFailure(err) {
			log.Err(err).Str("username", username).Msg("login failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid credentials"}, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user login")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, r, token.SignedString)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.gate.Logout(ctx, cookie.Value); err != nil {
			// the cookie is cleared either way; an already-invalid token
			// has nothing left to revoke
			log.Err(err).Msg("error revoking session on logout")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
	})
}
