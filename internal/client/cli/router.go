package cli

import (
	"github.com/iyasyr/iron-lms/internal/client/session"
	"github.com/iyasyr/iron-lms/internal/common"
)

// access is a route's visibility level.
type access int

const (
	// accessPublic routes render in any session state.
	accessPublic access = iota

	// accessProtected routes require an authenticated session; an anonymous
	// caller is redirected to the login prompt.
	accessProtected

	// accessInstructor routes additionally require the instructor role.
	accessInstructor
)

// guard applies the route policy against the current session snapshot.
// While the session is still being restored, protected views show a
// loading indicator instead of redirecting, so a slow startup never
// bounces a returning user through the login screen. A nil return means
// the view may render.
func (a *App) guard(level access) error {
	if level == accessPublic {
		return nil
	}

	snap := a.session.Current()

	if snap.State == session.StateInitializing {
		printlnFn("Restoring session, try again in a moment...")
		return common.ErrUnauthorized
	}

	if !snap.IsAuthenticated() {
		printlnFn("Please log in first (type 'login' or 'register').")
		return common.ErrUnauthorized
	}

	if level == accessInstructor && !snap.User.IsInstructor() {
		printlnFn("This command is available to instructors only.")
		return common.ErrAccessDenied
	}

	return nil
}

// SessionExpired is the transport's redirect hook: it fires after a forced
// logout, at most once per eviction, and lands the user back at the login
// prompt.
func (a *App) SessionExpired() {
	printlnFn("Your session has expired. Please log in again.")
}
