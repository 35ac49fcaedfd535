// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Study Partner client.
//
// All Msg* constants mirror the human-readable message strings the backend
// writes into the "error" field of its JSON error bodies. Keeping them in one
// place lets the service layer match server responses to business errors
// without scattering string literals around the codebase.
package app

const (
	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserNotAuthenticated is returned when a request arrives without a
	// valid bearer token, or with an expired one.
	MsgUserNotAuthenticated = "User not authenticated"

	// MsgUserNotFound is returned when the token's subject no longer exists.
	MsgUserNotFound = "User not found"

	// MsgNoteNotFound is returned when an operation targets a note that does
	// not exist or belongs to a different user.
	MsgNoteNotFound = "Note not found"

	// MsgSummaryNotFound is returned when a summary is requested for a note
	// that has none generated yet.
	MsgSummaryNotFound = "Summary not found"

	// MsgStudySessionNotFound is returned when a session update targets a
	// session that does not exist or belongs to a different user.
	MsgStudySessionNotFound = "Study session not found"

	// MsgUnsupportedFileType is returned when an uploaded document is not a
	// PDF, DOCX, or TXT file.
	MsgUnsupportedFileType = "Unsupported file type"

	// MsgInvalidFileData is returned when the uploaded payload is not valid
	// base64 or cannot be parsed as the declared file type.
	MsgInvalidFileData = "Invalid file data"
)
