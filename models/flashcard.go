package models

import "time"

// Flashcard is a question/answer pair generated from a Note. Cards are
// generated as a batch; ordering is whatever the backend returned.
type Flashcard struct {
	ID        int64     `json:"id"`
	NoteID    int64     `json:"note_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
