package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.services.NoteService.ListNotes(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) listRecentNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	// a missing or malformed limit falls back to the service default
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.services.NoteService.ListRecentNotes(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) getNotesByIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	rows, err := h.services.NoteService.GetNotesByIDs(r.Context(), userID, body.IDs)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) upsertNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var row models.RemoteNoteRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// the path is authoritative for the note id
	row.ID = chi.URLParam(r, "noteID")

	if err := h.services.NoteService.UpsertNote(r.Context(), userID, row); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, chi.URLParam(r, "noteID")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
