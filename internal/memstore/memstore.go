// Package memstore provides the in-memory AccountStore used by tests and
// single-process deployments. Accounts are indexed by ID and by normalized
// email under one RWMutex; every read hands out a deep copy.
package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/curatai/curauth"
)

// Store is an in-memory curauth.AccountStore. The zero value is not usable;
// construct with New.
type Store struct {
	mu        sync.RWMutex
	byID      map[string]*curauth.Account
	idByEmail map[string]string
}

var _ curauth.AccountStore = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		byID:      make(map[string]*curauth.Account),
		idByEmail: make(map[string]string),
	}
}

// Create implements curauth.AccountStore.
func (s *Store) Create(_ context.Context, account *curauth.Account) error {
	email := strings.ToLower(account.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.idByEmail[email]; exists {
		return curauth.ErrEmailTaken
	}
	s.byID[account.ID] = account.Clone()
	s.idByEmail[email] = account.ID
	return nil
}

// GetByID implements curauth.AccountStore. A miss returns (nil, nil).
func (s *Store) GetByID(_ context.Context, id string) (*curauth.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id].Clone(), nil
}

// GetByEmail implements curauth.AccountStore. A miss returns (nil, nil).
func (s *Store) GetByEmail(_ context.Context, email string) (*curauth.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return s.byID[id].Clone(), nil
}

// Update implements curauth.AccountStore. Unknown accounts are stored as-is;
// the Service only updates records it previously read.
func (s *Store) Update(_ context.Context, account *curauth.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byID[account.ID]; ok {
		prevEmail := strings.ToLower(prev.Email)
		newEmail := strings.ToLower(account.Email)
		if prevEmail != newEmail {
			delete(s.idByEmail, prevEmail)
			s.idByEmail[newEmail] = account.ID
		}
	} else {
		s.idByEmail[strings.ToLower(account.Email)] = account.ID
	}
	s.byID[account.ID] = account.Clone()
	return nil
}

// Len reports the number of stored accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
