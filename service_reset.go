package curauth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"unicode/utf8"

	"github.com/curatai/curauth/internal"
)

// RequestPasswordReset generates a single-use reset token with the
// configured expiry and returns it for the caller's delivery channel.
//
// An unknown email fails with [ErrUserNotFound], internally only. The
// boundary layer must present the same "if this email exists…" response for
// both outcomes; nothing here forces it to leak existence.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if s == nil || s.store == nil {
		return "", ErrServiceNotReady
	}

	email = normalizeEmail(email)
	probe, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("account lookup: %w", err)
	}
	if probe == nil {
		return "", ErrUserNotFound
	}

	unlock := s.locks.lock(probe.ID)
	defer unlock()

	account, err := s.store.GetByID(ctx, probe.ID)
	if err != nil {
		return "", fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return "", ErrUserNotFound
	}

	token, err := internal.NewToken()
	if err != nil {
		return "", fmt.Errorf("reset token: %w", err)
	}

	expiry := s.now().Add(s.config.Reset.TokenTTL).UTC()
	account.ResetToken = token
	account.ResetTokenExpiry = &expiry
	if err := s.store.Update(ctx, account); err != nil {
		return "", fmt.Errorf("account update: %w", err)
	}

	s.metricInc(MetricPasswordResetRequest)
	s.emitAudit(ctx, auditEventResetRequested, account.ID, email, true, nil, nil)
	return token, nil
}

// ResetPassword consumes a reset token and installs a new password under a
// fresh salt. A mismatched token fails with [ErrInvalidResetToken] and does
// NOT clear the stored token, so a guesser cannot burn the real one. A
// matching but stale token fails with [ErrResetTokenExpired] even
// when the strings agree exactly.
func (s *Service) ResetPassword(ctx context.Context, email, token, newPassword string) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}

	email = normalizeEmail(email)
	probe, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if probe == nil {
		return nil, ErrUserNotFound
	}

	unlock := s.locks.lock(probe.ID)
	defer unlock()

	account, err := s.store.GetByID(ctx, probe.ID)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	if account.ResetToken == "" || token == "" ||
		subtle.ConstantTimeCompare([]byte(account.ResetToken), []byte(token)) != 1 {
		s.metricInc(MetricPasswordResetFailure)
		s.emitAudit(ctx, auditEventResetFailure, account.ID, email, false, ErrInvalidResetToken, nil)
		return nil, ErrInvalidResetToken
	}
	if account.ResetTokenExpiry != nil && s.now().After(*account.ResetTokenExpiry) {
		s.metricInc(MetricPasswordResetFailure)
		s.emitAudit(ctx, auditEventResetFailure, account.ID, email, false, ErrResetTokenExpired, nil)
		return nil, ErrResetTokenExpired
	}
	if utf8.RuneCountInString(newPassword) < s.config.Password.MinLength {
		s.metricInc(MetricPasswordResetFailure)
		s.emitAudit(ctx, auditEventResetFailure, account.ID, email, false, ErrWeakPassword, nil)
		return nil, ErrWeakPassword
	}

	hash, salt, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	account.PasswordHash = encodeCredential(hash, salt)
	account.ResetToken = ""
	account.ResetTokenExpiry = nil
	if err := s.store.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("account update: %w", err)
	}

	s.metricInc(MetricPasswordResetSuccess)
	s.emitAudit(ctx, auditEventResetSuccess, account.ID, email, true, nil, nil)
	s.materializePermissions(account)
	return account.Clone(), nil
}
