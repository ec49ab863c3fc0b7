package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	minIterations = 100_000
	minSaltBytes  = 16
	minKeyBytes   = 16
)

// Config holds the PBKDF2 cost parameters. The zero value is invalid; use
// [DefaultConfig] as a starting point.
type Config struct {
	Iterations int
	SaltLength int // random salt bytes before hex encoding
	KeyLength  int // derived key bytes before hex encoding
}

// DefaultConfig returns the production parameters: 100,000 iterations, a
// 16-byte salt, and a 32-byte derived key.
func DefaultConfig() Config {
	return Config{
		Iterations: minIterations,
		SaltLength: minSaltBytes,
		KeyLength:  32,
	}
}

// Hasher derives and verifies password hashes. It is immutable after
// construction and safe for concurrent use.
type Hasher struct {
	config Config
}

// New validates cfg and returns a Hasher. Parameters below the enforced
// floors (100,000 iterations, 16-byte salt, 16-byte key) are rejected rather
// than silently raised.
func New(cfg Config) (*Hasher, error) {
	if cfg.Iterations < minIterations {
		return nil, errors.New("password: iteration count below minimum")
	}
	if cfg.SaltLength < minSaltBytes {
		return nil, errors.New("password: salt length below minimum")
	}
	if cfg.KeyLength < minKeyBytes {
		return nil, errors.New("password: key length below minimum")
	}
	return &Hasher{config: cfg}, nil
}

// Hash derives a hash for password under a freshly generated random salt and
// returns both as lower-case hex strings.
func (h *Hasher) Hash(password string) (hash, salt string, err error) {
	raw := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", "", err
	}
	salt = hex.EncodeToString(raw)
	return h.HashWithSalt(password, salt), salt, nil
}

// HashWithSalt derives a hash for password under the given salt. The salt's
// literal bytes feed the derivation, so the same (password, salt) pair always
// yields the same hash.
func (h *Hasher) HashWithSalt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.config.Iterations, h.config.KeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the derivation and compares against hash in constant
// time. An undecodable hash verifies as false, never as an error.
func (h *Hasher) Verify(password, hash, salt string) bool {
	expected, err := hex.DecodeString(hash)
	if err != nil || len(expected) == 0 {
		return false
	}
	computed := pbkdf2.Key([]byte(password), []byte(salt), h.config.Iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
