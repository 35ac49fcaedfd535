package models

import "time"

// Summary is the AI-generated condensed text derived from a single Note.
// At most one current version exists per note; regeneration replaces it.
type Summary struct {
	ID        int64     `json:"id"`
	NoteID    int64     `json:"note_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
