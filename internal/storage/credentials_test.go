package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldmann-io/protosnap/internal/models"
)

func newTestCode(code string) *models.AuthorizationCode {
	now := time.Now()
	return &models.AuthorizationCode{
		Code:        code,
		ClientID:    "swagger-editor",
		RedirectURI: "http://localhost:3000/callback",
		Scope:       "openid profile protocol.read",
		UserID:      "user-1",
		Email:       "jane.smith@contoso.com",
		DisplayName: "Jane Smith",
		ExpiresAt:   now.Add(5 * time.Minute),
		CreatedAt:   now,
	}
}

func TestTakeCodeRemovesEntry(t *testing.T) {
	store := NewMemoryCredentialStore()
	store.PutCode(newTestCode("abc123"))

	entry, ok := store.TakeCode("abc123")
	require.True(t, ok)
	assert.Equal(t, "jane.smith@contoso.com", entry.Email)

	_, ok = store.TakeCode("abc123")
	assert.False(t, ok, "second take must miss")
}

func TestTakeCodeUnknown(t *testing.T) {
	store := NewMemoryCredentialStore()
	entry, ok := store.TakeCode("never-issued")
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestTakeCodeReturnsExpiredEntry(t *testing.T) {
	store := NewMemoryCredentialStore()
	code := newTestCode("stale")
	code.ExpiresAt = time.Now().Add(-time.Minute)
	store.PutCode(code)

	// Expiry is the caller's concern: the store hands back the entry and
	// removes it either way.
	entry, ok := store.TakeCode("stale")
	require.True(t, ok)
	assert.True(t, entry.ExpiresAt.Before(time.Now()))

	_, ok = store.TakeCode("stale")
	assert.False(t, ok)
}

func TestTakeCodeConcurrentSingleWinner(t *testing.T) {
	store := NewMemoryCredentialStore()
	store.PutCode(newTestCode("contested"))

	const workers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.TakeCode("contested"); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	assert.Equal(t, 1, won, "exactly one goroutine may redeem the code")
}

func TestTakeRefreshTokenRotationPattern(t *testing.T) {
	store := NewMemoryCredentialStore()
	now := time.Now()
	store.PutRefreshToken(&models.RefreshToken{
		Token:     "rt-1",
		ClientID:  "swagger-editor",
		Scope:     "openid profile protocol.read",
		UserID:    "user-1",
		Email:     "jane.smith@contoso.com",
		ExpiresAt: now.Add(90 * 24 * time.Hour),
		CreatedAt: now,
	})

	entry, ok := store.TakeRefreshToken("rt-1")
	require.True(t, ok)

	// What a rotating grant handler does: store the successor under a new key.
	store.PutRefreshToken(&models.RefreshToken{
		Token:     "rt-2",
		ClientID:  entry.ClientID,
		Scope:     entry.Scope,
		UserID:    entry.UserID,
		Email:     entry.Email,
		ExpiresAt: now.Add(90 * 24 * time.Hour),
		CreatedAt: now,
	})

	_, ok = store.TakeRefreshToken("rt-1")
	assert.False(t, ok, "rotated-out token must stay dead")
	successor, ok := store.TakeRefreshToken("rt-2")
	require.True(t, ok)
	assert.Equal(t, "jane.smith@contoso.com", successor.Email)
}

func TestPurgeExpired(t *testing.T) {
	store := NewMemoryCredentialStore()
	now := time.Now()

	for i := 0; i < 3; i++ {
		code := newTestCode(fmt.Sprintf("dead-%d", i))
		code.ExpiresAt = now.Add(-time.Hour)
		store.PutCode(code)
	}
	store.PutCode(newTestCode("alive"))
	store.PutRefreshToken(&models.RefreshToken{
		Token:     "rt-dead",
		ExpiresAt: now.Add(-time.Hour),
	})

	assert.Equal(t, 4, store.PurgeExpired(now))

	_, ok := store.TakeCode("alive")
	assert.True(t, ok, "live entries must survive the purge")
}
