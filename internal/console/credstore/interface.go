// Package credstore persists the console's session credential across
// restarts: two named slots (token, identity) in a local SQLite database.
package credstore

import "context"

// Slot names. Both present means a session can be restored; anything else
// is treated as no session.
const (
	SlotToken    = "token"
	SlotIdentity = "identity"
)

// Repository is a small key/value store over the local database.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// SetAll writes all given slots in a single transaction, so a crash
	// cannot leave the token without its identity or vice versa.
	SetAll(ctx context.Context, slots map[string][]byte) error

	// Clear removes every slot. Idempotent.
	Clear(ctx context.Context) error
}
