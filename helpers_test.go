package curauth

import (
	"context"
	"strings"
	"sync"
	"testing"
)

// fakeStore is an in-test AccountStore with injectable faults, mirroring the
// contract of internal/memstore.
type fakeStore struct {
	mu        sync.RWMutex
	byID      map[string]*Account
	idByEmail map[string]string

	failGet    error
	failCreate error
	failUpdate error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byID:      make(map[string]*Account),
		idByEmail: make(map[string]string),
	}
}

func (s *fakeStore) Create(_ context.Context, account *Account) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	email := strings.ToLower(account.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.idByEmail[email]; exists {
		return ErrEmailTaken
	}
	s.byID[account.ID] = account.Clone()
	s.idByEmail[email] = account.ID
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*Account, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id].Clone(), nil
}

func (s *fakeStore) GetByEmail(_ context.Context, email string) (*Account, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.idByEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return s.byID[id].Clone(), nil
}

func (s *fakeStore) Update(_ context.Context, account *Account) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[account.ID] = account.Clone()
	s.idByEmail[strings.ToLower(account.Email)] = account.ID
	return nil
}

// mutate applies fn to the stored record under the store lock, bypassing the
// Service. Tests use it to age reset tokens and lockout windows.
func (s *fakeStore) mutate(id string, fn func(*Account)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byID[id]; ok {
		fn(a)
	}
}

func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	return newTestServiceWithConfig(t, DefaultConfig())
}

func newTestServiceWithConfig(t *testing.T, cfg Config) (*Service, *fakeStore) {
	t.Helper()

	store := newFakeStore()
	svc, err := New().
		WithConfig(cfg).
		WithStore(store).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc, store
}

func registerTestAccount(t *testing.T, svc *Service, email, password string) *Account {
	t.Helper()
	account, err := svc.Register(context.Background(), email, password, "Test User")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return account
}
