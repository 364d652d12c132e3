// Package transport implements the authenticated request pipeline: every
// outbound call, REST and GraphQL alike, goes through one resty client that
// attaches the bearer token on the way out and intercepts authorization
// failures on the way back.
package transport

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/iyasyr/iron-lms/internal/client/tokenstore"
	"github.com/iyasyr/iron-lms/internal/common"
	"github.com/iyasyr/iron-lms/internal/logging"
)

// Evictor forcibly ends the current session. Evict must be idempotent and
// report true only on an actual transition to the anonymous state, so the
// pipeline can redirect exactly once even when several in-flight requests
// fail together.
type Evictor interface {
	Evict(ctx context.Context) bool
}

// Options configures a Pipeline.
type Options struct {
	BaseURL     string
	GraphQLPath string
	Timeout     time.Duration
	Tokens      tokenstore.Store
	Log         logging.Logger
}

// Pipeline is the interceptor chain shared by the auth API and the GraphQL
// executor. Besides the session manager, it is the only component allowed to
// mutate the token store.
type Pipeline struct {
	rc          *resty.Client
	tokens      tokenstore.Store
	log         logging.Logger
	graphqlPath string

	mu       sync.Mutex
	evictor  Evictor
	redirect func()
}

func New(opts Options) *Pipeline {
	p := &Pipeline{
		tokens:      opts.Tokens,
		log:         opts.Log,
		graphqlPath: opts.GraphQLPath,
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json")
	rc.JSONMarshal = json.Marshal
	rc.JSONUnmarshal = json.Unmarshal

	rc.OnBeforeRequest(p.attachCredentials)
	rc.OnAfterResponse(p.interceptUnauthorized)

	p.rc = rc
	return p
}

// SetEvictor wires the session manager in after construction (the session
// depends on the auth API, which depends on this pipeline).
func (p *Pipeline) SetEvictor(e Evictor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evictor = e
}

// SetRedirect registers the navigation hook invoked after a forced logout.
func (p *Pipeline) SetRedirect(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.redirect = fn
}

// R returns a request bound to ctx, ready for the auth API's REST calls.
func (p *Pipeline) R(ctx context.Context) *resty.Request {
	return p.rc.R().SetContext(ctx)
}

// attachCredentials injects the persisted bearer token, when present, into
// outbound requests, plus a correlation id for logs. Credential-establishing
// calls go out anonymously: attaching the current bearer to a login retry
// would turn its 401 into a forced logout of the live session.
func (p *Pipeline) attachCredentials(_ *resty.Client, r *resty.Request) error {
	r.SetHeader(common.RequestIDHeaderName, uuid.NewString())

	if isCredentialEndpoint(r.URL) {
		return nil
	}

	token, err := p.tokens.Get(r.Context())
	if err != nil {
		return err
	}
	if token != "" {
		r.SetHeader(common.AuthHeaderName, common.BearerPrefix+token)
	}
	return nil
}

// isCredentialEndpoint reports whether url is a login or register call.
// The middleware sees the URL as set on the request, which may be either
// the bare path or the fully resolved form.
func isCredentialEndpoint(url string) bool {
	return strings.HasSuffix(url, common.AuthLoginPath) ||
		strings.HasSuffix(url, common.AuthRegisterPath)
}

// interceptUnauthorized applies the uniform authorization-failure reaction:
// a 401/403 on a request that carried the current token kills the session.
// A 401 on a credential-establishing call (no bearer attached) means bad
// credentials and is left to the caller.
func (p *Pipeline) interceptUnauthorized(_ *resty.Client, resp *resty.Response) error {
	code := resp.StatusCode()
	if code != 401 && code != 403 {
		return nil
	}
	if resp.Request.Header.Get(common.AuthHeaderName) == "" {
		return nil
	}
	p.forceLogout(resp.Request.Context())
	return nil
}

// forceLogout clears the token slot, evicts the session, and redirects to
// the login entry point on an actual state transition. It never retries the
// original request.
func (p *Pipeline) forceLogout(ctx context.Context) {
	if err := p.tokens.Clear(ctx); err != nil {
		p.log.Error(ctx, "failed to clear token on forced logout", "error", err)
	}

	p.mu.Lock()
	evictor := p.evictor
	redirect := p.redirect
	p.mu.Unlock()

	if evictor == nil {
		return
	}
	if evictor.Evict(ctx) {
		p.log.Warn(ctx, "session evicted after authorization failure")
		if redirect != nil {
			redirect()
		}
	}
}
