// Package credstore persists the session credentials (access and refresh
// token) in a small local sqlite database so a session survives process
// restarts. Exactly two keys are stored; no other local state belongs here.
package credstore

import "context"

// Durable key names. These are the on-disk layout; renaming them
// invalidates existing stores.
const (
	KeyAccessToken  = "token"
	KeyRefreshToken = "refreshToken"
)

// Repository is a durable key-value store for credentials.
//
// Get reports absence via ok=false; a missing key is not an error.
// Set overwrites unconditionally. SetPair writes both tokens in a single
// transaction so a crash can never leave one token without the other.
// Clear removes both keys and is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	SetPair(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
