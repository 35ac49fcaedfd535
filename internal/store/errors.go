package store

import "errors"

var ErrSessionNotFound = errors.New("local session not found")
