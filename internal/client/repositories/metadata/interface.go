// Package metadata is the durable client-side key-value store. The session
// manager keeps the bearer token and the serialized identity here so a login
// survives process restarts.
package metadata

import "context"

// Repository is a small KV surface over the local store.
//
// Get returns (nil, nil) when the key is absent; callers treat a nil value
// as "not set" rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
