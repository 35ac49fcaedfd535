// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business logic on top of the
// transport adapter and the local session store. Services validate input,
// translate transport errors into business errors, and keep the persisted
// login session in step with the adapter's bearer token.
package service

import (
	"context"

	"github.com/studypartner/go-study-partner/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ContentKind identifies one of the three AI-generated study content types
// derived from a note. The string values double as URL path segments and as
// study session type labels.
type ContentKind string

const (
	ContentSummary    ContentKind = "summary"
	ContentFlashcards ContentKind = "flashcards"
	ContentQuiz       ContentKind = "quiz"
)

// StudyContent holds one kind of study content for a note. Exactly one of the
// payload fields is populated, matching Kind.
type StudyContent struct {
	Kind       ContentKind
	Summary    models.Summary
	Flashcards []models.Flashcard
	Quiz       []models.QuizQuestion
}

// Empty reports whether the content carries nothing to show. The backend
// answers flashcard and quiz reads for untouched notes with an empty list
// rather than a 404, so emptiness is the real "nothing generated yet" signal
// for those kinds.
func (c StudyContent) Empty() bool {
	switch c.Kind {
	case ContentSummary:
		return c.Summary.Content == ""
	case ContentFlashcards:
		return len(c.Flashcards) == 0
	case ContentQuiz:
		return len(c.Quiz) == 0
	default:
		return true
	}
}

// ClientAuthService defines the client-side contract for account access and
// session lifecycle. Implementations persist the session locally after a
// successful login and keep the adapter's bearer token in sync with it.
type ClientAuthService interface {
	// Register validates the request, creates the account on the server, and
	// persists the returned session locally. Returns the created user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login validates the request, authenticates with the server, and
	// persists the returned session locally. Returns the authenticated user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// RestoreSession loads the locally persisted session, rejects it if the
	// token's exp claim has already passed, installs the token into the
	// adapter, and confirms it against the server's profile endpoint.
	// Returns [ErrNoSavedSession] when nothing is persisted and
	// [ErrSessionExpired] when the token is no longer usable; in the latter
	// case the stale session is removed.
	RestoreSession(ctx context.Context) (models.User, error)

	// CurrentUser fetches the authenticated user's profile from the server.
	CurrentUser(ctx context.Context) (models.User, error)

	// Logout clears the adapter token and removes the persisted session.
	Logout(ctx context.Context) error
}

// ClientNotesService defines the client-side contract for managing uploaded
// study documents.
type ClientNotesService interface {
	// Upload validates that filePath points to a supported document, reads
	// and base64-encodes it, and sends it to the server. Returns the note
	// the backend created from the extracted text.
	Upload(ctx context.Context, filePath string) (models.Note, error)

	// List fetches all notes owned by the authenticated user.
	List(ctx context.Context) ([]models.Note, error)

	// Get fetches a single note. Returns [ErrNoteNotFound] if the note does
	// not exist or belongs to another user.
	Get(ctx context.Context, noteID int64) (models.Note, error)

	// Delete removes a note and everything generated from it.
	Delete(ctx context.Context, noteID int64) error

	// Search runs a semantic search over the user's notes. The query must be
	// non-blank.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// ClientStudyService defines the client-side contract for AI-generated study
// content and study telemetry.
type ClientStudyService interface {
	// LoadExisting fetches previously generated content of the given kind.
	// Returns [ErrContentNotFound] when nothing has been generated yet,
	// which includes the backend answering with an empty list.
	LoadExisting(ctx context.Context, noteID int64, kind ContentKind) (StudyContent, error)

	// Generate asks the backend to (re)generate content of the given kind,
	// replacing whatever existed before. Blocks until generation finishes.
	Generate(ctx context.Context, noteID int64, kind ContentKind) (StudyContent, error)

	// BeginSession records the start of a flashcard or quiz run.
	BeginSession(ctx context.Context, noteID int64, kind ContentKind) (models.StudySession, error)

	// CompleteSession marks a session as finished. score is nil for
	// flashcard runs and holds the 0-100 percentage for quiz runs.
	CompleteSession(ctx context.Context, sessionID int64, score *int) error
}
