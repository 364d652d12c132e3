// Package common contains shared constants and sentinel errors used across
// the Iron LMS client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth API errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")

	// ErrUnauthorized means the persisted token was rejected by the backend.
	// At the pipeline level it is always fatal to the session.
	ErrUnauthorized = errors.New("unauthorized")

	// Resource-level errors, recovered locally by the UI.
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")

	// ErrNetwork wraps transport-level failures. No automatic retries are
	// performed anywhere in this layer; the user re-triggers the action.
	ErrNetwork = errors.New("network error")

	// ErrSessionChanged marks a settle that lost the race against a newer
	// session transition; its result has been discarded.
	ErrSessionChanged = errors.New("session changed")

	ErrInternal = errors.New("internal error")
)
