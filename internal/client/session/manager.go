package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iyasyr/iron-lms/internal/client/api"
	"github.com/iyasyr/iron-lms/internal/client/models"
	"github.com/iyasyr/iron-lms/internal/client/tokenstore"
	"github.com/iyasyr/iron-lms/internal/common"
	"github.com/iyasyr/iron-lms/internal/logging"
)

// Manager is the session state machine. A monotonic sequence number guards
// against stale settles: every committed transition bumps it, and an async
// auth call that started before the bump discards its result instead of
// regressing the session.
type Manager struct {
	mu      sync.Mutex
	tokens  tokenstore.Store
	auth    api.Auth
	log     logging.Logger
	state   State
	user    *models.User
	loading bool
	seq     uint64

	subs    map[int]func(Snapshot)
	nextSub int
}

func NewManager(tokens tokenstore.Store, auth api.Auth, log logging.Logger) *Manager {
	return &Manager{
		tokens:  tokens,
		auth:    auth,
		log:     log,
		state:   StateInitializing,
		loading: true,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Current returns the session snapshot.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers an observer called after every committed transition.
// The returned function unsubscribes.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Init resolves the startup state: a persisted token is validated against
// the backend, with no intermediate anonymous state observable on success.
// A token whose JWT expiry has already passed is cleared without a network
// round-trip. Absence of a token settles to anonymous immediately.
func (m *Manager) Init(ctx context.Context) error {
	token, err := m.tokens.Get(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to read token store", "error", err)
		m.commitAnonymous(ctx, false)
		return err
	}

	if token == "" {
		m.commitAnonymous(ctx, false)
		return nil
	}

	if tokenExpired(token) {
		m.log.Info(ctx, "persisted token already expired, skipping validation")
		m.commitAnonymous(ctx, true)
		return nil
	}

	start := m.currentSeq()

	user, err := m.auth.ValidateToken(ctx)

	m.mu.Lock()
	if m.seq != start {
		m.mu.Unlock()
		return common.ErrSessionChanged
	}

	if err != nil {
		// Stale token and transport failure alike: without a confirmed user
		// the token must not outlive this probe.
		if clearErr := m.tokens.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear rejected token", "error", clearErr)
		}
		m.user = nil
		m.state = StateAnonymous
		m.loading = false
		m.seq++
		notify := m.publishLocked()
		m.mu.Unlock()
		notify()
		return err
	}

	m.user = user
	m.state = StateAuthenticated
	m.loading = false
	m.seq++
	notify := m.publishLocked()
	m.mu.Unlock()
	notify()
	m.log.Info(ctx, "session restored", "user_id", user.ID, "role", user.Role)
	return nil
}

// Login authenticates and, on success, persists the token and installs the
// user snapshot in one committed transition. On failure the session is left
// untouched and the error kind is preserved for the caller's UI.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	return m.establish(ctx, func() (*models.AuthResponse, error) {
		return m.auth.Login(ctx, email, password)
	})
}

// Register mirrors Login using the register endpoint.
func (m *Manager) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	return m.establish(ctx, func() (*models.AuthResponse, error) {
		return m.auth.Register(ctx, email, password, fullName)
	})
}

func (m *Manager) establish(ctx context.Context, call func() (*models.AuthResponse, error)) (*models.User, error) {
	m.mu.Lock()
	start := m.seq
	m.loading = true
	notify := m.publishLocked()
	m.mu.Unlock()
	notify()

	resp, err := call()

	m.mu.Lock()
	if m.seq != start {
		// A logout, eviction, or competing call committed first; this
		// settle must not overwrite the newer state.
		m.mu.Unlock()
		return nil, common.ErrSessionChanged
	}

	if err != nil {
		m.loading = false
		notify = m.publishLocked()
		m.mu.Unlock()
		notify()
		return nil, err
	}

	// Token write happens-before the state transition; both are published
	// by the same critical section so observers see them together.
	if err := m.tokens.Set(ctx, resp.Token); err != nil {
		m.loading = false
		notify = m.publishLocked()
		m.mu.Unlock()
		notify()
		return nil, err
	}

	user := resp.User
	m.user = &user
	m.state = StateAuthenticated
	m.loading = false
	m.seq++
	notify = m.publishLocked()
	m.mu.Unlock()
	notify()

	m.log.Info(ctx, "session established", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// Logout clears the token and the user synchronously. It never calls the
// backend.
func (m *Manager) Logout(ctx context.Context) {
	m.commitAnonymous(ctx, true)
	m.log.Info(ctx, "logged out")
}

// Evict is the pipeline's forced logout. It is idempotent and reports true
// only on an actual transition out of a live session, which lets the caller
// redirect exactly once across concurrent failures.
func (m *Manager) Evict(ctx context.Context) bool {
	m.mu.Lock()
	if m.state == StateAnonymous {
		m.mu.Unlock()
		return false
	}

	if err := m.tokens.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear token on eviction", "error", err)
	}
	m.user = nil
	m.state = StateAnonymous
	m.loading = false
	m.seq++
	notify := m.publishLocked()
	m.mu.Unlock()
	notify()
	return true
}

func (m *Manager) commitAnonymous(ctx context.Context, clearToken bool) {
	m.mu.Lock()
	if clearToken {
		if err := m.tokens.Clear(ctx); err != nil {
			m.log.Error(ctx, "failed to clear token store", "error", err)
		}
	}
	m.user = nil
	m.state = StateAnonymous
	m.loading = false
	m.seq++
	notify := m.publishLocked()
	m.mu.Unlock()
	notify()
}

func (m *Manager) currentSeq() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seq
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{User: m.user, State: m.state, Loading: m.loading}
}

// publishLocked captures the committed snapshot and subscriber list; the
// returned closure must be invoked after the lock is released so observers
// may read Current() without deadlocking.
func (m *Manager) publishLocked() func() {
	snap := m.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(snap)
		}
	}
}

// tokenExpired peeks at a JWT's exp claim without verifying the signature.
// Opaque (non-JWT) tokens and tokens without exp are passed through to the
// backend probe.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
