package curauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/curatai/curauth/jwt"
	"github.com/curatai/curauth/session"
)

// Refresh mints a new access token from a tracked refresh token. The
// refresh token itself is not rotated; it stays valid until its own expiry
// or an explicit Logout. Untracked, expired, and malformed tokens all fail
// with [ErrInvalidRefreshToken].
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthToken, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotReady
	}

	userID, err := s.sessions.Lookup(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrNotTracked) {
			s.metricInc(MetricRefreshFailure)
			s.emitAudit(ctx, auditEventRefreshFailure, "", "", false, ErrInvalidRefreshToken, func() map[string]string {
				return map[string]string{"reason": "untracked"}
			})
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh lookup: %w", err)
	}

	claims, err := s.tokens.Verify(refreshToken)
	if err != nil || claims.TokenType != jwt.TypeRefresh || claims.Subject != userID {
		s.metricInc(MetricRefreshFailure)
		s.emitAudit(ctx, auditEventRefreshFailure, userID, "", false, ErrInvalidRefreshToken, nil)
		return nil, ErrInvalidRefreshToken
	}

	account, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		s.metricInc(MetricRefreshFailure)
		return nil, ErrUserNotFound
	}

	access, err := s.tokens.IssueAccess(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	s.metricInc(MetricRefreshSuccess)
	s.emitAudit(ctx, auditEventRefreshSuccess, account.ID, account.Email, true, nil, nil)

	return &AuthToken{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    jwt.BearerType,
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
		UserID:       account.ID,
	}, nil
}

// Logout revokes a refresh token. A token that was never tracked, or was
// already logged out, is not an error: once Logout returns, the token can
// never again produce an access token.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if s == nil || s.sessions == nil {
		return ErrServiceNotReady
	}
	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("refresh revoke: %w", err)
	}
	s.metricInc(MetricLogout)
	s.emitAudit(ctx, auditEventLogout, "", "", true, nil, nil)
	return nil
}

// VerifyToken decodes and validates any token issued by this Service,
// returning its claims. Expired tokens fail with [ErrTokenExpired] and
// everything else invalid with [ErrTokenMalformed], so the HTTP layer can
// prompt re-login only where it helps.
func (s *Service) VerifyToken(token string) (*jwt.Claims, error) {
	if s == nil || s.tokens == nil {
		return nil, ErrServiceNotReady
	}
	return s.tokens.Verify(token)
}
