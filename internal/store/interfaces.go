// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence layer.
//
// The only thing the client keeps on disk is the login session: the bearer
// token and the profile it was issued for, stored in a single-row SQLite
// table. The schema is applied on startup via the migrations package.
package store

import (
	"context"

	"github.com/studypartner/go-study-partner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionRepository persists the current login session on the client device.
// At most one session exists at a time; saving replaces any previous one.
type SessionRepository interface {
	// SaveSession stores session, overwriting the previous one if present.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the persisted session. Returns [ErrSessionNotFound]
	// if no session has been saved or the session was cleared on logout.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting an absent
	// session is not an error.
	DeleteSession(ctx context.Context) error
}
