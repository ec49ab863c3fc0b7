package curauth

import (
	"context"
	"fmt"

	"github.com/curatai/curauth/jwt"
)

// Login verifies credentials and returns a fresh access+refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller;
// both fail with [ErrInvalidCredentials].
//
// Lock state is checked before the password so a locked account answers
// [ErrAccountLocked] even to the correct password. Each wrong password
// increments the failure counter; reaching the configured threshold opens a
// lockout window. Success resets the counter, clears any expired lock, and
// stamps the login time.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*AuthToken, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}

	email = normalizeEmail(email)
	probe, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if probe == nil {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, "", email, false, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{"reason": "unknown_email"}
		})
		return nil, ErrInvalidCredentials
	}

	// The read-check-increment-write sequence below must not interleave
	// with a concurrent login for the same account, or two near-simultaneous
	// failures could both observe a pre-threshold counter.
	unlock := s.locks.lock(probe.ID)
	defer unlock()

	account, err := s.store.GetByID(ctx, probe.ID)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !account.Active {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, account.ID, email, false, ErrAccountDisabled, nil)
		return nil, ErrAccountDisabled
	}

	now := s.now()
	if account.LockedUntil != nil && account.LockedUntil.After(now) {
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, account.ID, email, false, ErrAccountLocked, nil)
		return nil, ErrAccountLocked
	}

	hash, salt, ok := splitCredential(account.PasswordHash)
	if !ok || !s.hasher.Verify(plaintext, hash, salt) {
		account.FailedLoginCount++
		if account.FailedLoginCount >= s.config.Lockout.Threshold {
			until := now.Add(s.config.Lockout.Duration)
			account.LockedUntil = &until
			s.metricInc(MetricAccountLocked)
			s.emitAudit(ctx, auditEventAccountLocked, account.ID, email, false, ErrAccountLocked, func() map[string]string {
				return map[string]string{"failed_attempts": fmt.Sprint(account.FailedLoginCount)}
			})
		}
		if err := s.store.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("account update: %w", err)
		}
		s.metricInc(MetricLoginFailure)
		s.emitAudit(ctx, auditEventLoginFailure, account.ID, email, false, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{"reason": "wrong_password"}
		})
		return nil, ErrInvalidCredentials
	}

	account.FailedLoginCount = 0
	account.LockedUntil = nil
	lastLogin := now.UTC()
	account.LastLoginAt = &lastLogin
	if err := s.store.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("account update: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, account)
	if err != nil {
		return nil, err
	}

	s.metricInc(MetricLoginSuccess)
	s.emitAudit(ctx, auditEventLoginSuccess, account.ID, email, true, nil, nil)
	return pair, nil
}

// issueTokenPair mints both tokens and tracks the refresh token for
// revocation. Multiple refresh tokens may be outstanding per account.
func (s *Service) issueTokenPair(ctx context.Context, account *Account) (*AuthToken, error) {
	access, err := s.tokens.IssueAccess(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(account.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	if err := s.sessions.Put(ctx, refresh, account.ID, s.tokens.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("refresh tracking: %w", err)
	}

	return &AuthToken{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    jwt.BearerType,
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
		UserID:       account.ID,
	}, nil
}
