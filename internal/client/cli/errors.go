package cli

import (
	"errors"

	"github.com/iyasyr/iron-lms/internal/common"
)

// friendly maps a pipeline error to a message suitable for the terminal.
// The error kind, not its wording, drives the mapping, so server message
// changes do not leak into the UI.
func friendly(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrUnauthorized):
		return "You need to log in to do that."
	case errors.Is(err, common.ErrAccessDenied):
		return "You don't have permission to do that."
	case errors.Is(err, common.ErrNotFound):
		return "Nothing found with that identifier."
	case errors.Is(err, common.ErrNetwork):
		return "Cannot reach the server. Check your connection and try again."
	case errors.Is(err, common.ErrSessionChanged):
		return "The session changed while the request was in flight. Try again."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// report prints the friendly form of err and passes it through.
func report(err error) error {
	if err != nil {
		printlnFn(friendly(err))
	}
	return err
}
