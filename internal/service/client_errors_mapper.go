// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUnsupportedFileType:
			return ErrUnsupportedFileType
		case app.MsgInvalidFileData:
			return ErrInvalidFileData
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgSummaryNotFound:
			return ErrContentNotFound
		case app.MsgStudySessionNotFound:
			return ErrStudySessionNotFound
		}
		return ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUserAlreadyExists {
			return ErrEmailAlreadyRegistered
		}

	case errors.Is(err, adapter.ErrBadGateway):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerInternal
	}

	return err
}

// extractBody extracts the body from a message of the form "not found: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
