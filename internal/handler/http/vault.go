package http

import (
	"encoding/json"
	"net/http"

	"github.com/mvolkhin/notelock/internal/utils"
)

type vaultSaltBody struct {
	Salt string `json:"salt"`
}

func (h *Handler) getVaultSalt(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	salt, err := h.services.VaultService.GetSalt(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, vaultSaltBody{Salt: salt}, http.StatusOK)
}

func (h *Handler) putVaultSalt(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var body vaultSaltBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.VaultService.PutSalt(r.Context(), userID, body.Salt)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, vaultSaltBody{Salt: stored}, http.StatusOK)
}
