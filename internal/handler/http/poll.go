package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/notifier"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/models"
)

// defaultPollTimeout applies when the caller omits the timeout parameter.
const defaultPollTimeout = 30 * time.Second

// poll implements GET /api/poll, the long-poll notification channel.
//
// The caller passes its last known version; the response is held open
// until the user's version advances past it, the (clamped) timeout
// elapses, or the client disconnects. A change whose client_id matches
// the caller's own is the caller's echo: it is never returned, and the
// poll keeps waiting for a foreign write until its deadline.
func (h *Handler) poll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()

	var version int64
	if raw := query.Get("version"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			log.Err(err).Str("version", raw).Msg("invalid poll version")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid version"}, http.StatusBadRequest)
			return
		}
		version = parsed
	}

	timeout := defaultPollTimeout
	if raw := query.Get("timeout"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("timeout", raw).Msg("invalid poll timeout")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid timeout"}, http.StatusBadRequest)
			return
		}
		timeout = time.Duration(seconds) * time.Second
	}
	if timeout < time.Second {
		timeout = time.Second
	}
	if timeout > h.clipboard.PollMaxTimeout {
		timeout = h.clipboard.PollMaxTimeout
	}

	clientID := query.Get("client_id")
	deadline := time.Now().Add(timeout)

	// known advances past suppressed echoes so each loop iteration waits
	// for the next write rather than re-reading the same one.
	known := version

	for {
		latest, err := h.store.Clipboard.GetLatestVersion(ctx, userID)
		if err != nil {
			log.Err(err).Msg("error getting latest version")
			writeError(w, err)
			return
		}

		if latest <= known {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				utils.WriteJSON(w, models.PollResponse{Status: "timeout", Version: latest}, http.StatusOK)
				return
			}

			result := h.notifier.WaitForChange(ctx, userID, known, remaining)
			switch result.Outcome {
			case notifier.Cancelled:
				// client went away; there is nobody left to respond to
				log.Debug().Int64("known_version", known).Msg("poll cancelled by client")
				return
			case notifier.TimedOut:
				// report the store's latest, not the notifier's: the
				// notifier is process-local and restarts at 0, while the
				// store is the durable truth
				utils.WriteJSON(w, models.PollResponse{Status: "timeout", Version: latest}, http.StatusOK)
				return
			case notifier.Advanced:
				latest = result.CurrentVersion
			}
		}

		entry, err := h.store.Clipboard.GetCurrent(ctx, userID)
		if err != nil {
			// a version that advanced with no entry behind it can only
			// mean the store was emptied out from under us; report it
			// like a timeout
			if errors.Is(err, store.ErrEmpty) {
				utils.WriteJSON(w, models.PollResponse{Status: "timeout", Version: latest}, http.StatusOK)
				return
			}
			log.Err(err).Msg("error getting current entry after wake-up")
			writeError(w, err)
			return
		}

		// loop-back suppression: the caller's own write never round-trips
		// back to it; wait out the rest of the deadline instead
		if clientID != "" && entry.ClientID == clientID {
			known = entry.Version
			continue
		}

		utils.WriteJSON(w, models.PollResponse{Status: "success", Version: entry.Version, Data: &entry}, http.StatusOK)
		return
	}
}
