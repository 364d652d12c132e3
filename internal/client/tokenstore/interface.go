package tokenstore

import "context"

// Store is the single durable slot holding the current bearer token.
// An empty string means logged out. The token is opaque at this layer.
//
// Only the session manager and the request pipeline mutate the store;
// everything else reads.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
