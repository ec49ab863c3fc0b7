package curauth

import (
	"errors"
	"time"
)

// Config defines the tunable surface of the Service. Build validates the
// whole Config and rejects partial ones rather than filling gaps; construct
// via DefaultConfig or ConfigFromEnv and adjust fields before Build. The one
// exception is Token.Secret, which Build generates when left empty.
type Config struct {
	Token    TokenConfig
	Password PasswordConfig
	Lockout  LockoutConfig
	Reset    ResetConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig holds the signing secret and token lifetimes. An empty Secret
// is replaced by a random one at Build; rotating the secret invalidates all
// outstanding tokens.
type TokenConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig holds the PBKDF2 cost parameters and the registration
// password policy.
type PasswordConfig struct {
	Iterations int
	SaltLength int
	KeyLength  int
	MinLength  int
}

/*
====================================
LOCKOUT CONFIG
====================================
*/

// LockoutConfig controls the failed-login defense: after Threshold
// consecutive failures the account refuses logins for Duration.
type LockoutConfig struct {
	Threshold int
	Duration  time.Duration
}

// ResetConfig controls the password reset flow.
type ResetConfig struct {
	TokenTTL time.Duration
}

// AuditConfig controls the audit dispatcher. With DropIfFull set, events
// that cannot be buffered are counted and discarded instead of blocking
// the calling flow.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig enables the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the documented defaults: 1h access tokens, 7d
// refresh tokens, 100,000 PBKDF2 iterations, 8-char password minimum,
// lockout after 5 failures for 15 minutes, 1h reset tokens. Audit and
// metrics are off until enabled.
func DefaultConfig() Config {
	return Config{
		Token: TokenConfig{
			AccessTTL:  time.Hour,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		Password: PasswordConfig{
			Iterations: 100_000,
			SaltLength: 16,
			KeyLength:  32,
			MinLength:  8,
		},
		Lockout: LockoutConfig{
			Threshold: 5,
			Duration:  15 * time.Minute,
		},
		Reset: ResetConfig{
			TokenTTL: time.Hour,
		},
		Audit: AuditConfig{
			BufferSize: 256,
		},
	}
}

// Validate rejects configurations the Service cannot run with.
func (c *Config) Validate() error {
	if c.Token.AccessTTL <= 0 || c.Token.RefreshTTL <= 0 {
		return errors.New("config: token TTLs must be positive")
	}
	if c.Password.MinLength < 8 {
		return errors.New("config: password minimum length below 8")
	}
	if c.Lockout.Threshold <= 0 {
		return errors.New("config: lockout threshold must be positive")
	}
	if c.Lockout.Duration <= 0 {
		return errors.New("config: lockout duration must be positive")
	}
	if c.Reset.TokenTTL <= 0 {
		return errors.New("config: reset token TTL must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("config: audit buffer size must be positive")
	}
	return nil
}

func cloneConfig(c Config) Config {
	out := c
	out.Token.Secret = append([]byte(nil), c.Token.Secret...)
	return out
}
