package curauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/curatai/curauth/jwt"
	"github.com/curatai/curauth/password"
	"github.com/curatai/curauth/permission"
	"github.com/curatai/curauth/session"
)

// Service is the authentication and authorization core. Construct it through
// [Builder.Build]; the zero value is unusable. All methods are safe for
// concurrent use; per-account mutations are serialized internally.
type Service struct {
	config   Config
	store    AccountStore
	sessions session.Store
	hasher   *password.Hasher
	tokens   *jwt.Manager
	audit    *auditDispatcher
	metrics  *Metrics
	locks    *accountLocks

	now func() time.Time // test hook
}

// Close flushes and stops the audit dispatcher. The Service must not be
// used after Close.
func (s *Service) Close() {
	if s == nil {
		return
	}
	s.audit.Close()
}

// MetricsSnapshot returns a point-in-time copy of the Service counters.
func (s *Service) MetricsSnapshot() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return s.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (s *Service) AuditDropped() uint64 {
	if s == nil {
		return 0
	}
	return s.audit.Dropped()
}

// GetUser returns the account with the given ID, or ErrUserNotFound.
func (s *Service) GetUser(ctx context.Context, id string) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}
	account, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	s.materializePermissions(account)
	return account, nil
}

// GetUserByEmail returns the account registered under the normalized email,
// or ErrUserNotFound.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}
	account, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	s.materializePermissions(account)
	return account, nil
}

// HasPermission reports whether account holds perm. Admins always do.
func (s *Service) HasPermission(account *Account, perm string) bool {
	if account == nil {
		return false
	}
	return permission.Has(string(account.Role), account.Permissions, perm)
}

// TierFeatures returns the feature set unlocked by tier.
func (s *Service) TierFeatures(tier Tier) (permission.Features, bool) {
	return permission.TierFeatures(string(tier))
}

// materializePermissions recomputes the derived permission set from the
// account's role. Stored permission lists are never trusted.
func (s *Service) materializePermissions(a *Account) {
	a.Permissions = permission.For(string(a.Role))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// encodeCredential packs hash and salt into the stored "hash$salt" form.
func encodeCredential(hash, salt string) string {
	return hash + "$" + salt
}

// splitCredential undoes encodeCredential. ok is false for records that do
// not carry the expected two hex fields.
func splitCredential(stored string) (hash, salt string, ok bool) {
	hash, salt, found := strings.Cut(stored, "$")
	if !found || hash == "" || salt == "" {
		return "", "", false
	}
	return hash, salt, true
}

func (s *Service) metricInc(id MetricID) {
	if s == nil {
		return
	}
	s.metrics.Inc(id)
}

// emitAudit builds and enqueues an audit event. Metadata is constructed
// lazily so disabled auditing costs nothing.
func (s *Service) emitAudit(ctx context.Context, eventType, userID, email string, success bool, failure error, metadata func() map[string]string) {
	if s == nil || s.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: s.now().UTC(),
		EventType: eventType,
		UserID:    userID,
		Email:     email,
		Success:   success,
	}
	if failure != nil {
		event.Error = failure.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}
	s.audit.Emit(ctx, event)
}
