// Package state persists the client's durable key/value state: the logged-in
// user profile and the PIN-lock record live here, one key per field.
package state

import "context"

// Repository is a durable string key/value store. Get returns "" with
// ok=false for a missing key so callers can distinguish absence from an
// empty value.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
