package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/internal/utils"
	"github.com/copypasta/copypasta-server/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}

func (h *Handler) paste(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
		return
	}

	var req models.PasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON"}, http.StatusBadRequest)
		return
	}

	// metadata is opaque to the core; absent means the empty JSON object
	if req.Metadata == "" {
		req.Metadata = "{}"
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("content_type", string(req.Type)).Msg("paste payload rejected")
		writeError(w, err)
		return
	}

	entry, err := h.store.Clipboard.InsertEntry(ctx, userID, req.Type, req.Content, req.Metadata, req.ClientID, h.clipboard.HistoryLimit)
	if err != nil {
		log.Err(err).Msg("error inserting clipboard entry")
		writeError(w, err)
		return
	}

	h.notifier.Publish(userID, entry.Version)

	utils.WriteJSON(w, models.PasteResponse{Status: "success", Version: entry.Version}, http.StatusOK)
}

func (h *Handler) getCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
		return
	}

	entry, err := h.store.Clipboard.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrEmpty) {
			utils.WriteJSON(w, models.ClipboardResponse{Status: "empty"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("error getting current clipboard entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ClipboardResponse{Status: "success", Version: entry.Version, Data: &entry}, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
		return
	}

	limit := h.clipboard.HistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Err(err).Str("limit", raw).Msg("invalid history limit")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid limit"}, http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > h.clipboard.HistoryLimit {
		limit = h.clipboard.HistoryLimit
	}

	entries, err := h.store.Clipboard.GetHistory(ctx, userID, limit)
	if err != nil {
		log.Err(err).Msg("error getting clipboard history")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{Status: "success", Data: entries}, http.StatusOK)
}
