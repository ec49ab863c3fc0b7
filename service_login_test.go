package curauth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoginSuccess(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "alice@example.com", "correct-horse")

	pair, err := svc.Login(ctx, "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", pair.TokenType)
	}
	if pair.UserID != account.ID {
		t.Fatalf("token pair bound to %q, want %q", pair.UserID, account.ID)
	}
	if pair.ExpiresIn != int(time.Hour.Seconds()) {
		t.Fatalf("expected 3600s expiry, got %d", pair.ExpiresIn)
	}

	stored, _ := store.GetByID(ctx, account.ID)
	if stored.LastLoginAt == nil {
		t.Fatal("expected login timestamp")
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)

	registerTestAccount(t, svc, "bob@example.com", "password123")

	if _, err := svc.Login(context.Background(), "  BOB@Example.COM ", "password123"); err != nil {
		t.Fatalf("Login with unnormalized email failed: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registerTestAccount(t, svc, "carol@example.com", "password123")

	// Unknown email and wrong password must be indistinguishable.
	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "carol@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "dave@example.com", "password123")
	store.mutate(account.ID, func(a *Account) { a.Active = false })

	if _, err := svc.Login(ctx, "dave@example.com", "password123"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestLoginLockoutAfterThreshold(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "eve@example.com", "password123")

	for i := 0; i < 5; i++ {
		if _, err := svc.Login(ctx, "eve@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	stored, _ := store.GetByID(ctx, account.ID)
	if stored.FailedLoginCount != 5 {
		t.Fatalf("expected 5 recorded failures, got %d", stored.FailedLoginCount)
	}
	if stored.LockedUntil == nil {
		t.Fatal("expected lockout window to be set")
	}

	// Lock precedes the password check: the correct password is refused too.
	if _, err := svc.Login(ctx, "eve@example.com", "password123"); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked, got %v", err)
	}
	if _, err := svc.Login(ctx, "eve@example.com", "wrong-password"); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked for wrong password too, got %v", err)
	}
}

func TestLoginAfterLockoutExpires(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "frank@example.com", "password123")
	for i := 0; i < 5; i++ {
		_, _ = svc.Login(ctx, "frank@example.com", "wrong-password")
	}

	svc.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	if _, err := svc.Login(ctx, "frank@example.com", "password123"); err != nil {
		t.Fatalf("login after lockout expiry failed: %v", err)
	}

	stored, _ := store.GetByID(ctx, account.ID)
	if stored.FailedLoginCount != 0 {
		t.Fatalf("expected failure counter reset, got %d", stored.FailedLoginCount)
	}
	if stored.LockedUntil != nil {
		t.Fatal("expected lock cleared after successful login")
	}
}

func TestLoginFailureCounterResetsOnSuccess(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "grace@example.com", "password123")
	for i := 0; i < 3; i++ {
		_, _ = svc.Login(ctx, "grace@example.com", "wrong-password")
	}

	if _, err := svc.Login(ctx, "grace@example.com", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	stored, _ := store.GetByID(ctx, account.ID)
	if stored.FailedLoginCount != 0 {
		t.Fatalf("expected counter reset, got %d", stored.FailedLoginCount)
	}
}

func TestLoginConcurrentFailuresStopAtThreshold(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	account := registerTestAccount(t, svc, "mallory@example.com", "password123")

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = svc.Login(ctx, "mallory@example.com", "wrong-password")
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	stored, _ := store.GetByID(ctx, account.ID)
	if stored.FailedLoginCount != 5 {
		t.Fatalf("expected counter pinned at threshold 5, got %d", stored.FailedLoginCount)
	}
	if stored.LockedUntil == nil {
		t.Fatal("expected lockout window to be set")
	}
}
