package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminators carried in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// BearerType is the constant token_type reported alongside issued pairs.
const BearerType = "bearer"

var (
	// ErrTokenExpired marks a well-formed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed marks an unparsable token, an invalid signature, or
	// an unexpected signing algorithm.
	ErrTokenMalformed = errors.New("token malformed")
)

// Config holds the signing secret and token lifetimes.
type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Claims is the decoded token payload. Subject carries the user ID.
type Claims struct {
	Email     string `json:"email,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a process-wide HMAC secret. It is
// immutable after construction and safe for concurrent use.
type Manager struct {
	config Config

	now func() time.Time // test hook
}

// NewManager validates cfg and returns a Manager. The secret must be
// non-empty; generating one when absent is the builder's job so that it
// happens exactly once per process.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwt: signing secret required")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("jwt: invalid TTL configuration")
	}
	return &Manager{config: cfg, now: time.Now}, nil
}

// AccessTTL returns the configured access token lifetime.
func (m *Manager) AccessTTL() time.Duration { return m.config.AccessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (m *Manager) RefreshTTL() time.Duration { return m.config.RefreshTTL }

// IssueAccess signs a short-lived access token for userID carrying email.
func (m *Manager) IssueAccess(userID, email string) (string, error) {
	return m.sign(Claims{
		Email:     email,
		TokenType: TypeAccess,
	}, userID, m.config.AccessTTL)
}

// IssueRefresh signs a long-lived refresh token for userID.
func (m *Manager) IssueRefresh(userID string) (string, error) {
	return m.sign(Claims{
		TokenType: TypeRefresh,
	}, userID, m.config.RefreshTTL)
}

func (m *Manager) sign(claims Claims, userID string, ttl time.Duration) (string, error) {
	issued := m.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.config.Secret)
}

// Verify parses and validates token, returning its claims. Expired tokens
// fail with [ErrTokenExpired]; every other failure maps to
// [ErrTokenMalformed].
func (m *Manager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return m.config.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
