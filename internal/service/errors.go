package service

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	ErrNoSavedSession = errors.New("no saved session")
	ErrSessionExpired = errors.New("session expired, please log in again")

	ErrNoteNotFound         = errors.New("note not found")
	ErrContentNotFound      = errors.New("study content not generated yet")
	ErrStudySessionNotFound = errors.New("study session not found")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidFileData     = errors.New("invalid file data")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrServerInternal    = errors.New("server error")
)
