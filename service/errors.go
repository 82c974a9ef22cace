package service

import "github.com/pkg/errors"

// Error taxonomy surfaced to the request boundary. Callers branch with
// errors.Is; the sentinels are wrapped with context at the failure site.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrTransient       = errors.New("transient failure")
)
