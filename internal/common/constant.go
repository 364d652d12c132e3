package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests, REST and GraphQL alike.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the token value in AuthHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id for logs.
const RequestIDHeaderName = "X-Request-Id"

// REST auth endpoints. Login and register establish credentials and are
// always called anonymously; Me validates the stored token.
const (
	AuthLoginPath    = "/auth/login"
	AuthRegisterPath = "/auth/register"
	AuthMePath       = "/auth/me"
)
