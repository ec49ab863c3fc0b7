package curauth

import (
	"context"
	"fmt"
)

// UpgradeSubscription moves the account to tier and recomputes its derived
// permission and feature surface. Payment authorization is an external
// concern; by the time this is called, billing has already settled.
func (s *Service) UpgradeSubscription(ctx context.Context, userID string, tier Tier) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}
	if !tier.Valid() {
		return nil, ErrInvalidSubscriptionTier
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	account, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	previous := account.SubscriptionTier
	account.SubscriptionTier = tier
	s.materializePermissions(account)
	if err := s.store.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("account update: %w", err)
	}

	s.metricInc(MetricSubscriptionChange)
	s.emitAudit(ctx, auditEventSubscriptionChange, account.ID, account.Email, true, nil, func() map[string]string {
		return map[string]string{"from": string(previous), "to": string(tier)}
	})
	return account.Clone(), nil
}
