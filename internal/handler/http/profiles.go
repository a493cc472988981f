package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.VaultService.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var profile models.ProfileRow
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.UpsertProfile(r.Context(), userID, profile); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) lookupProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromRequest(w, r); !ok {
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.VaultService.LookupProfileByEmail(r.Context(), body.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
