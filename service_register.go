package curauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/curatai/curauth/internal"
)

// Register creates a new account under the normalized email with role
// member and the free tier. The account starts unverified, carrying a
// single-use verification token for the caller's delivery channel.
//
// Fails with [ErrInvalidEmail], [ErrWeakPassword], or [ErrEmailTaken].
func (s *Service) Register(ctx context.Context, email, plaintext, displayName string) (*Account, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}

	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	// Policy counts characters, not bytes; multibyte passwords must not
	// clear the minimum early.
	if utf8.RuneCountInString(plaintext) < s.config.Password.MinLength {
		s.emitAudit(ctx, auditEventRegisterFailure, "", email, false, ErrWeakPassword, nil)
		return nil, ErrWeakPassword
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if existing != nil {
		s.metricInc(MetricRegisterDuplicate)
		s.emitAudit(ctx, auditEventRegisterFailure, "", email, false, ErrEmailTaken, nil)
		return nil, ErrEmailTaken
	}

	hash, salt, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	verificationToken, err := internal.NewToken()
	if err != nil {
		return nil, fmt.Errorf("verification token: %w", err)
	}

	account := &Account{
		ID:                uuid.NewString(),
		Email:             email,
		DisplayName:       displayName,
		PasswordHash:      encodeCredential(hash, salt),
		Role:              RoleMember,
		SubscriptionTier:  TierFree,
		VerificationToken: verificationToken,
		CreatedAt:         s.now().UTC(),
		Active:            true,
	}
	s.materializePermissions(account)

	if err := s.store.Create(ctx, account); err != nil {
		// A concurrent registration can win the race between the lookup
		// above and this insert; surface it as the same taken-email error.
		if errors.Is(err, ErrEmailTaken) {
			s.metricInc(MetricRegisterDuplicate)
			s.emitAudit(ctx, auditEventRegisterFailure, "", email, false, ErrEmailTaken, nil)
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("account create: %w", err)
	}

	s.metricInc(MetricRegisterSuccess)
	s.emitAudit(ctx, auditEventRegister, account.ID, email, true, nil, func() map[string]string {
		return map[string]string{"role": string(account.Role)}
	})

	return account.Clone(), nil
}
