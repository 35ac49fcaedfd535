package models

import "time"

// User represents an account entity as returned by the backend.
// The client never stores credentials; only the authenticated user's
// profile is held in memory for display.
type User struct {
	// ID is the backend-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account change.
	UpdatedAt time.Time `json:"updated_at"`
}
