package models

// AuthResponse is returned by the login and register endpoints. The token
// must be attached as a bearer token to every subsequent authenticated
// request; the user profile is held for display.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SearchResult is a Note ranked by semantic similarity to the query.
// Higher similarity means a closer match; ordering is backend-defined.
type SearchResult struct {
	Note
	Similarity float64 `json:"similarity"`
}

// ErrorResponse is the structured error body the backend attaches to
// non-2xx responses. The message is surfaced to the user verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteNoteResponse is returned by DELETE /api/notes/{id}.
type DeleteNoteResponse struct {
	Message string `json:"message"`
}
