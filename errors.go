package curauth

import (
	"errors"

	"github.com/curatai/curauth/jwt"
)

var (
	// ErrEmailTaken is returned by Register when the normalized email is
	// already indexed in the account store.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidEmail is returned by Register for an empty or malformed email.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrWeakPassword is returned by Register and ResetPassword when the
	// password is shorter than the configured minimum.
	ErrWeakPassword = errors.New("password does not meet minimum length")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountLocked is returned while the lockout window is active,
	// regardless of whether the supplied password was correct.
	ErrAccountLocked = errors.New("account temporarily locked")
	// ErrAccountDisabled is returned when the account's active flag is off.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrInvalidRefreshToken is returned by Refresh for untracked, expired,
	// or malformed refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrInvalidVerificationToken is returned by VerifyEmail on mismatch or
	// when the single-use token was already consumed.
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	// ErrUserNotFound is returned by ID-addressed operations for unknown
	// accounts. Login deliberately never returns it.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidResetToken is returned by ResetPassword on mismatch. The
	// stored token is not cleared by a failed attempt.
	ErrInvalidResetToken = errors.New("invalid reset token")
	// ErrResetTokenExpired is returned when the reset token matches but its
	// expiry has passed.
	ErrResetTokenExpired = errors.New("reset token expired")
	// ErrInvalidSubscriptionTier is returned by UpgradeSubscription for a
	// tier outside free/pro/enterprise.
	ErrInvalidSubscriptionTier = errors.New("invalid subscription tier")
	// ErrServiceNotReady is returned when a Service is used without being
	// constructed through Builder.Build.
	ErrServiceNotReady = errors.New("service not initialized")
)

// Token verification failures are distinguishable error kinds so callers can
// prompt re-login on expiry but reject malformed tokens outright.
var (
	// ErrTokenExpired marks a well-formed token past its expiry.
	ErrTokenExpired = jwt.ErrTokenExpired
	// ErrTokenMalformed marks an unparsable token or a bad signature.
	ErrTokenMalformed = jwt.ErrTokenMalformed
)
