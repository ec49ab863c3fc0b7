package curauth

import (
	"context"
	"time"
)

// Role is a stable string identifying an account's role. Permission sets are
// derived from it through the permission catalog.
type Role string

const (
	// RoleMember is the default role assigned at registration.
	RoleMember Role = "member"
	// RoleCurator can manage opportunities and evaluate proposals.
	RoleCurator Role = "curator"
	// RoleAdmin holds a wildcard over every resource.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleCurator, RoleAdmin:
		return true
	}
	return false
}

// Tier is a stable string identifying a subscription tier. Tiers gate
// features independently of role.
type Tier string

const (
	// TierFree allows 10 opportunities per month and no AI generation.
	TierFree Tier = "free"
	// TierPro allows 100 opportunities per month and AI generation.
	TierPro Tier = "pro"
	// TierEnterprise is unlimited with priority support.
	TierEnterprise Tier = "enterprise"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return true
	}
	return false
}

// Account is the identity, credential, and state record for one user.
//
// JSON field names are stable and round-trip losslessly, so a JSON-backed
// AccountStore can persist the struct directly. Permissions are derived from
// Role and are deliberately excluded from serialization; stores must not
// treat them as a source of truth.
type Account struct {
	ID               string `json:"user_id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	PasswordHash     string `json:"password_hash"` // "<hex hash>$<hex salt>"
	Role             Role   `json:"role"`
	SubscriptionTier Tier   `json:"subscription_tier"`

	Verified          bool       `json:"verified"`
	VerificationToken string     `json:"verification_token,omitempty"`
	ResetToken        string     `json:"reset_token,omitempty"`
	ResetTokenExpiry  *time.Time `json:"reset_token_expires,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	Active      bool       `json:"active"`

	Permissions []string `json:"-"`

	FailedLoginCount int        `json:"login_attempts"`
	LockedUntil      *time.Time `json:"locked_until,omitempty"`
}

// Clone returns a deep copy. Stores and the Service hand out copies so that
// callers cannot mutate shared state behind the per-account lock.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	out := *a
	out.ResetTokenExpiry = cloneTime(a.ResetTokenExpiry)
	out.LastLoginAt = cloneTime(a.LastLoginAt)
	out.LockedUntil = cloneTime(a.LockedUntil)
	out.Permissions = append([]string(nil), a.Permissions...)
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// AuthToken is the credential pair returned by Login and Refresh. Token
// strings are opaque to callers and are passed back verbatim.
type AuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // always "bearer"
	ExpiresIn    int    `json:"expires_in"` // access token lifetime, seconds
	UserID       string `json:"user_id"`
}

// AccountStore is the durable account map this core runs against. Any
// backing medium qualifies: the in-memory implementation in
// internal/memstore serves tests and examples, a database serves production.
//
// Contract:
//   - Create fails with [ErrEmailTaken] when the normalized email is
//     already indexed.
//   - GetByID and GetByEmail return (nil, nil) on a miss; a non-nil error
//     always means a storage fault, never absence.
//   - Update replaces the full record. The Service is the sole writer and
//     serializes mutations per account; stores only need per-call atomicity.
type AccountStore interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, account *Account) error
}
