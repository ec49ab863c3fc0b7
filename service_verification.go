package curauth

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// VerifyEmail consumes the account's single-use verification token. On a
// match the account becomes verified and the token is cleared; it can never
// be consumed twice. Mismatches fail with [ErrInvalidVerificationToken]
// without touching the stored token.
func (s *Service) VerifyEmail(ctx context.Context, userID, token string) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
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

	if account.VerificationToken == "" || token == "" ||
		subtle.ConstantTimeCompare([]byte(account.VerificationToken), []byte(token)) != 1 {
		s.metricInc(MetricEmailVerificationFailure)
		s.emitAudit(ctx, auditEventVerificationFail, account.ID, account.Email, false, ErrInvalidVerificationToken, nil)
		return nil, ErrInvalidVerificationToken
	}

	account.Verified = true
	account.VerificationToken = ""
	if err := s.store.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("account update: %w", err)
	}

	s.metricInc(MetricEmailVerificationSuccess)
	s.emitAudit(ctx, auditEventEmailVerified, account.ID, account.Email, true, nil, nil)
	s.materializePermissions(account)
	return account.Clone(), nil
}
