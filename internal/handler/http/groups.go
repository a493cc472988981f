package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	group, err := h.services.GroupService.CreateGroup(r.Context(), userID, body.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) addGroupMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	groupID := chi.URLParam(r, "groupID")
	if err := h.services.GroupService.AddMember(r.Context(), userID, groupID, body.UserID, body.Role); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) removeGroupMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	groupID := chi.URLParam(r, "groupID")
	memberID := chi.URLParam(r, "userID")
	if err := h.services.GroupService.RemoveMember(r.Context(), userID, groupID, memberID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listGroupMemberKeys(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	keys, err := h.services.GroupService.ListMemberKeys(r.Context(), userID, chi.URLParam(r, "groupID"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) listGroupShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	shares, err := h.services.GroupService.ListGroupShares(r.Context(), userID, chi.URLParam(r, "groupID"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, shares, http.StatusOK)
}

func (h *Handler) rotateGroupKeys(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RotateGroupKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// the path is authoritative for the group id
	req.GroupID = chi.URLParam(r, "groupID")

	if err := h.services.GroupService.RotateGroupKeys(r.Context(), userID, req); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
