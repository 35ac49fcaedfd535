// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Study Partner backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/studypartner/go-study-partner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Study
// Partner backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login, and again when a persisted session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ClearToken drops the stored bearer token. Subsequent requests are sent
	// unauthenticated until SetToken is called again.
	ClearToken()

	// Register creates a new account. On success the returned token is stored
	// via SetToken and the created user profile is returned alongside it.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CurrentUser fetches the profile of the authenticated user. Used to
	// validate a restored token before reusing it.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListNotes fetches all notes owned by the authenticated user.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by its identifier.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UploadNote sends a base64-encoded document to the backend, which
	// extracts its text and returns the created note.
	UploadNote(ctx context.Context, req models.UploadRequest) (models.Note, error)

	// DeleteNote removes a note and all study content derived from it.
	DeleteNote(ctx context.Context, noteID int64) error

	// SearchNotes performs a semantic search over the user's notes and
	// returns matches ranked by similarity.
	SearchNotes(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error)

	// GetSummary fetches the existing summary for a note. Returns
	// [ErrNotFound] (wrapped) if none has been generated yet.
	GetSummary(ctx context.Context, noteID int64) (models.Summary, error)

	// GenerateSummary asks the backend to produce a new summary for a note,
	// replacing any previous one. This call blocks until generation finishes.
	GenerateSummary(ctx context.Context, noteID int64) (models.Summary, error)

	// GetFlashcards fetches the existing flashcard set for a note. Returns
	// [ErrNotFound] (wrapped) if none has been generated yet.
	GetFlashcards(ctx context.Context, noteID int64) ([]models.Flashcard, error)

	// GenerateFlashcards asks the backend to produce a new flashcard set for
	// a note, replacing any previous one.
	GenerateFlashcards(ctx context.Context, noteID int64) ([]models.Flashcard, error)

	// GetQuiz fetches the existing quiz for a note. Returns [ErrNotFound]
	// (wrapped) if none has been generated yet.
	GetQuiz(ctx context.Context, noteID int64) ([]models.QuizQuestion, error)

	// GenerateQuiz asks the backend to produce a new quiz for a note,
	// replacing any previous one.
	GenerateQuiz(ctx context.Context, noteID int64) ([]models.QuizQuestion, error)

	// CreateStudySession records the start of a flashcard or quiz run for a
	// note and returns the created session.
	CreateStudySession(ctx context.Context, req models.CreateStudySessionRequest) (models.StudySession, error)

	// UpdateStudySession marks a session as completed, optionally attaching
	// a quiz score.
	UpdateStudySession(ctx context.Context, sessionID int64, req models.UpdateStudySessionRequest) (models.StudySession, error)
}
