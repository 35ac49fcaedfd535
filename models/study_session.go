package models

import "time"

// StudySession records a single study attempt (flashcards or quiz run) for
// a note. It is write-only telemetry: the client creates and updates
// sessions but never reads them back.
type StudySession struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	NoteID    int64     `json:"note_id"`
	Type      string    `json:"type"`
	Score     *int      `json:"score,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
