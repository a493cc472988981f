package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	shares, err := h.services.ShareService.ListShares(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, shares, http.StatusOK)
}

func (h *Handler) upsertShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var share models.NoteShareRow
	if err := json.NewDecoder(r.Body).Decode(&share); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ShareService.UpsertShare(r.Context(), userID, share); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	noteID := query.Get("note_id")
	sharedWithType := query.Get("shared_with_type")
	sharedWithID := query.Get("shared_with_id")

	if err := h.services.ShareService.DeleteShare(r.Context(), userID, noteID, sharedWithType, sharedWithID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listGroupKeys(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.services.ShareService.ListGroupKeys(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) upsertGroupKeys(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var rows []models.GroupKeyRow
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ShareService.UpsertGroupKeys(r.Context(), userID, rows); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
