package models

import "time"

// QuizQuestion is a single multiple-choice question generated from a Note.
type QuizQuestion struct {
	ID       int64  `json:"id"`
	NoteID   int64  `json:"note_id"`
	Question string `json:"question"`

	// Options is the ordered list of answer options. An empty list is a
	// legitimate backend response and must be handled as a display issue,
	// not an error.
	Options []string `json:"options"`

	// Answer is the index into Options of the correct option.
	Answer int `json:"answer"`

	CreatedAt time.Time `json:"created_at"`
}
