package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iyasyr/iron-lms/internal/logging"
)

// ---- fakes ----

type fakeStore struct {
	mu    sync.Mutex
	token string

	GetErr   error
	ClearErr error
}

func (f *fakeStore) Get(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.GetErr
}

func (f *fakeStore) Set(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	return f.ClearErr
}

// fakeEvictor transitions to anonymous exactly once, like the real session.
type fakeEvictor struct {
	mu     sync.Mutex
	calls  int
	active bool
}

func (f *fakeEvictor) Evict(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if !f.active {
		return false
	}
	f.active = false
	return true
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestPipeline(t *testing.T, baseURL string, store *fakeStore) *Pipeline {
	t.Helper()
	return New(Options{
		BaseURL:     baseURL,
		GraphQLPath: "/graphql",
		Timeout:     5 * time.Second,
		Tokens:      store,
		Log:         testLogger(),
	})
}

// ---- TESTS ----

func TestPipeline_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := &fakeStore{token: "abc"}
	p := newTestPipeline(t, srv.URL, store)

	resp, err := p.R(context.Background()).Get("/api/anything")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Equal(t, "Bearer abc", gotAuth)
}

func TestPipeline_NoBearerWhenStoreEmpty(t *testing.T) {
	var gotAuth string
	var gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newTestPipeline(t, srv.URL, &fakeStore{})

	_, err := p.R(context.Background()).Get("/auth/login")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestPipeline_UnauthorizedWithBearer_EvictsAndRedirectsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &fakeStore{token: "stale"}
	evictor := &fakeEvictor{active: true}
	redirects := 0

	p := newTestPipeline(t, srv.URL, store)
	p.SetEvictor(evictor)
	p.SetRedirect(func() { redirects++ })

	// several requests failing with the same stale token
	for i := 0; i < 3; i++ {
		// re-arm the token so each request carries a bearer header
		_ = store.Set(context.Background(), "stale")
		_, err := p.R(context.Background()).Get("/api/courses")
		require.NoError(t, err)
	}

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
	require.Equal(t, 3, evictor.calls)
	require.Equal(t, 1, redirects, "redirect must fire exactly once")
}

func TestPipeline_UnauthorizedWithoutBearer_LeavesSessionAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	evictor := &fakeEvictor{active: true}
	p := newTestPipeline(t, srv.URL, &fakeStore{})
	p.SetEvictor(evictor)

	_, err := p.R(context.Background()).Post("/auth/login")
	require.NoError(t, err)
	require.Zero(t, evictor.calls)
}

func TestPipeline_FailedReloginKeepsLiveSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// a live session is already established
	store := &fakeStore{token: "live-session-token"}
	evictor := &fakeEvictor{active: true}
	p := newTestPipeline(t, srv.URL, store)
	p.SetEvictor(evictor)

	// the user retries login with a wrong password
	_, err := p.R(context.Background()).Post("/auth/login")
	require.NoError(t, err)

	require.Empty(t, gotAuth, "credential-establishing calls go out anonymously")
	require.Zero(t, evictor.calls)

	tok, _ := store.Get(context.Background())
	require.Equal(t, "live-session-token", tok, "failed login must not clear the live token")
}

func TestPipeline_RegisterConflictKeepsLiveSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	store := &fakeStore{token: "live-session-token"}
	evictor := &fakeEvictor{active: true}
	p := newTestPipeline(t, srv.URL, store)
	p.SetEvictor(evictor)

	_, err := p.R(context.Background()).Post("/auth/register")
	require.NoError(t, err)

	require.Empty(t, gotAuth)
	require.Zero(t, evictor.calls)
}

func TestPipeline_ForbiddenWithBearer_Evicts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	store := &fakeStore{token: "t"}
	evictor := &fakeEvictor{active: true}
	p := newTestPipeline(t, srv.URL, store)
	p.SetEvictor(evictor)

	_, err := p.R(context.Background()).Get("/api/items")
	require.NoError(t, err)
	require.Equal(t, 1, evictor.calls)

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
}
