package handler

import (
	"encoding/json"
	"net/http"

	"notesvc/internal/errs"
	"notesvc/internal/note/model"
	"notesvc/internal/note/service"
	"notesvc/middleware"
	"notesvc/pkg/logger"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(middleware.PrincipalKey).(middleware.Principal)

	notes, err := h.Service.GetNotes(p.ID)
	if err != nil {
		logger.Sugar.Errorf("Error fetching notes for user %s: %v", p.ID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(middleware.PrincipalKey).(middleware.Principal)

	var req model.CreateNoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // Ignore error, empty text is rejected below

	note, err := h.Service.CreateNote(p.ID, req.Text)
	if err == errs.ErrEmptyText {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to add note for user %s: %v", p.ID, err)
		writeError(w, http.StatusInternalServerError, "Failed to add note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(middleware.PrincipalKey).(middleware.Principal)
	noteID := r.PathValue("id")

	err := h.Service.DeleteNote(noteID, p.ID)
	if err == errs.ErrNotAuthorized {
		// Missing and not-owned notes answer identically so callers
		// cannot probe for other users' note ids.
		writeError(w, http.StatusForbidden, "Not authorized")
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", noteID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
