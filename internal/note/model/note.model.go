package model

import "time"

// Note is the single persisted entity: one user-owned text record.
// OwnerID and CreatedAt are fixed at creation; there is no update operation.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	OwnerID   string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateNoteRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
