package models

import "errors"

// Sentinel errors for the collaborator boundary. The engine itself only ever
// returns ErrInvalidInput; ErrNotFound and ErrUnauthorized are raised by the
// storage/auth collaborators before any calculation runs.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)
