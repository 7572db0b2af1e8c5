package service

import (
	"encoding/json"
	"strings"
	"time"

	"notesvc/internal/errs"
	"notesvc/internal/note/model"
	"notesvc/internal/note/repository"
	"notesvc/socket"

	"github.com/gofrs/uuid/v5"
)

type NoteService struct {
	Repo *repository.NoteRepository
	Hub  *socket.Hub
}

func NewNoteService(repo *repository.NoteRepository, hub *socket.Hub) *NoteService {
	return &NoteService{Repo: repo, Hub: hub}
}

// CreateNote validates and persists a new note owned by userID.
func (s *NoteService) CreateNote(userID, text string) (*model.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyText
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	note := model.Note{
		ID:        id.String(),
		Text:      text,
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(note); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		payload, _ := json.Marshal(note)
		s.Hub.Broadcast <- socket.Event{
			Type:    socket.NoteCreatedType,
			UserID:  userID,
			Payload: payload,
		}
	}
	return &note, nil
}

func (s *NoteService) GetNotes(userID string) ([]model.Note, error) {
	return s.Repo.GetByOwner(userID)
}

// DeleteNote removes the note if it exists and belongs to userID. A missing
// note and a note owned by someone else both return ErrNotAuthorized.
func (s *NoteService) DeleteNote(noteID, userID string) error {
	note, err := s.Repo.GetByID(noteID)
	if err == errs.ErrNotFound {
		return errs.ErrNotAuthorized
	}
	if err != nil {
		return err
	}
	if note.OwnerID != userID {
		return errs.ErrNotAuthorized
	}

	if err := s.Repo.Delete(noteID); err != nil {
		return err
	}

	if s.Hub != nil {
		payload, _ := json.Marshal(map[string]string{"id": noteID})
		s.Hub.Broadcast <- socket.Event{
			Type:    socket.NoteDeletedType,
			UserID:  userID,
			Payload: payload,
		}
	}
	return nil
}
