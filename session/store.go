package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotTracked is returned by Lookup for tokens that were never stored,
// were logged out, or whose TTL has lapsed.
var ErrNotTracked = errors.New("refresh token not tracked")

// Store is the refresh-token tracking boundary. Implementations must allow
// concurrent reads and serialize writes per key; Delete must be idempotent.
type Store interface {
	// Put records token → userID for ttl.
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Lookup resolves token to its user ID or fails with ErrNotTracked.
	Lookup(ctx context.Context, token string) (string, error)
	// Delete untracks token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

// tokenKey digests a refresh token for use as a storage key.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
