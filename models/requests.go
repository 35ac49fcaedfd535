package models

// LoginRequest carries the credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the data for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UploadRequest is the body of POST /api/notes/upload. File holds the
// whole document encoded as base64; Name is the original filename.
type UploadRequest struct {
	File string `json:"file"`
	Name string `json:"name"`
}

// SearchRequest is the body of POST /api/notes/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// CreateStudySessionRequest is the body of POST /api/study/sessions.
type CreateStudySessionRequest struct {
	NoteID int64  `json:"note_id"`
	Type   string `json:"type"`
}

// UpdateStudySessionRequest is the body of PUT /api/study/sessions/{id}.
// Score is optional; flashcard runs complete without one.
type UpdateStudySessionRequest struct {
	Score     *int `json:"score,omitempty"`
	Completed bool `json:"completed"`
}
