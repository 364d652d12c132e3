// Package session owns the client's authentication state. The Manager is
// the single writer: all mutations funnel through Login, Register, Logout,
// the startup validation in Init, and pipeline-driven eviction. Everything
// else observes read-only snapshots.
package session

import "github.com/iyasyr/iron-lms/internal/client/models"

// State is the session's lifecycle position.
type State int

const (
	// StateInitializing means the persisted token is being validated; views
	// should render a loading indicator, not redirect.
	StateInitializing State = iota

	// StateAnonymous means no valid credential is held.
	StateAnonymous

	// StateAuthenticated means a user snapshot is present and the token
	// store holds the matching credential.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session taken under the manager's
// lock; consumers never observe a token without its user or vice versa.
type Snapshot struct {
	User    *models.User
	State   State
	Loading bool
}

// IsAuthenticated is true exactly when a user snapshot is present.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}
