package models

import "time"

// Session is the locally persisted login state. It keeps the bearer token
// together with the profile it was issued for, so the client can skip the
// login screen when the token is still valid.
type Session struct {
	UserID  int64     `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
