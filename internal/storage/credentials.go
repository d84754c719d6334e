// Package storage provides the in-memory stores backing the mock server.
package storage

import (
	"sync"
	"time"

	"github.com/feldmann-io/protosnap/internal/models"
)

// MemoryCredentialStore is a mutex-guarded map store for authorization codes
// and refresh tokens. Holding the lock across the lookup-and-delete gives the
// exactly-once Take semantics the token endpoint relies on.
type MemoryCredentialStore struct {
	mu     sync.Mutex
	codes  map[string]*models.AuthorizationCode
	tokens map[string]*models.RefreshToken
}

// NewMemoryCredentialStore creates an empty credential store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{
		codes:  make(map[string]*models.AuthorizationCode),
		tokens: make(map[string]*models.RefreshToken),
	}
}

// PutCode stores an authorization code entry.
func (s *MemoryCredentialStore) PutCode(code *models.AuthorizationCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code.Code] = code
}

// TakeCode removes and returns the entry for code. Every caller after the
// first observes a miss, including for expired entries.
func (s *MemoryCredentialStore) TakeCode(code string) (*models.AuthorizationCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[code]
	if !ok {
		return nil, false
	}
	delete(s.codes, code)
	return entry, true
}

// PutRefreshToken stores a refresh token entry.
func (s *MemoryCredentialStore) PutRefreshToken(token *models.RefreshToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.Token] = token
}

// TakeRefreshToken removes and returns the entry for token.
func (s *MemoryCredentialStore) TakeRefreshToken(token string) (*models.RefreshToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	delete(s.tokens, token)
	return entry, true
}

// PurgeExpired removes all entries that expired before now.
func (s *MemoryCredentialStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for key, entry := range s.codes {
		if entry.ExpiresAt.Before(now) {
			delete(s.codes, key)
			purged++
		}
	}
	for key, entry := range s.tokens {
		if entry.ExpiresAt.Before(now) {
			delete(s.tokens, key)
			purged++
		}
	}
	return purged
}
