// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/studypartner/go-study-partner/models"
)

// The sessions table holds at most one row with a fixed primary key, so
// every query targets sessionRowID.
const sessionRowID = 1

var sessionColumns = []string{"user_id", "email", "name", "token", "saved_at"}

// buildUpsertSessionQuery builds the insert-or-replace statement that stores
// the current login session.
func buildUpsertSessionQuery(session models.Session) (string, []any, error) {
	return squirrel.
		Insert("sessions").
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, session.UserID, session.Email, session.Name, session.Token, session.SavedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			user_id  = excluded.user_id,
			email    = excluded.email,
			name     = excluded.name,
			token    = excluded.token,
			saved_at = excluded.saved_at`).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return squirrel.
		Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return squirrel.
		Delete("sessions").
		Where(squirrel.Eq{"id": sessionRowID}).
		ToSql()
}
