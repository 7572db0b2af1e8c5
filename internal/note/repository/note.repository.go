package repository

import (
	"database/sql"

	"notesvc/internal/errs"
	"notesvc/internal/note/model"
	"notesvc/pkg/logger"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note model.Note) error {
	_, err := r.DB.Exec(`INSERT INTO notes (id, text, owner_id, created_at) VALUES ($1, $2, $3, $4)`,
		note.ID, note.Text, note.OwnerID, note.CreatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to insert note %s: %v", note.ID, err)
	}
	return err
}

func (r *NoteRepository) GetByOwner(ownerID string) ([]model.Note, error) {
	rows, err := r.DB.Query(`SELECT id, text, owner_id, created_at FROM notes WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to get notes for user %s: %v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Text, &n.OwnerID, &n.CreatedAt); err != nil {
			logger.Sugar.Errorf("Failed to scan note row: %v", err)
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) GetByID(id string) (*model.Note, error) {
	var n model.Note
	err := r.DB.QueryRow(`SELECT id, text, owner_id, created_at FROM notes WHERE id = $1`, id).
		Scan(&n.ID, &n.Text, &n.OwnerID, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get note %s: %v", id, err)
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", id, err)
	}
	return err
}
