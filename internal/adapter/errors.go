package adapter

import "errors"

// Sentinel transport errors produced by mapHTTPError. The server's error
// message (the "error" field of the JSON body) is appended after the sentinel
// so callers can match with errors.Is and still surface the original text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
