// Package interfaces defines the store contracts the server is wired against.
package interfaces

import (
	"time"

	"github.com/feldmann-io/protosnap/internal/models"
)

// CredentialStore owns all authorization codes and refresh tokens. The Take
// operations remove the entry as part of the lookup and must be atomic with
// respect to concurrent requests for the same key: at most one caller
// observes the entry, every other caller observes a miss. Expiry is the
// caller's concern; the store never inspects ExpiresAt on lookup.
type CredentialStore interface {
	// PutCode stores an authorization code keyed by its opaque code string.
	PutCode(code *models.AuthorizationCode)

	// TakeCode removes and returns the code entry, or reports a miss.
	TakeCode(code string) (*models.AuthorizationCode, bool)

	// PutRefreshToken stores a refresh token keyed by its opaque token string.
	PutRefreshToken(token *models.RefreshToken)

	// TakeRefreshToken removes and returns the token entry, or reports a miss.
	TakeRefreshToken(token string) (*models.RefreshToken, bool)

	// PurgeExpired drops entries whose expiry is before now and returns the
	// number removed. Best effort housekeeping; redemption never depends on it.
	PurgeExpired(now time.Time) int
}

// CatalogStore exposes the fixed resource tables behind the bearer check.
// Implementations are read-only process-wide state.
type CatalogStore interface {
	Sites() []models.Site
	Plants() []models.Plant
	ClosedProtocols() []models.ClosedProtocol
	ClosedProtocol(id string) (*models.ClosedProtocol, bool)
	Snapshot(protocolID string) (*models.ProtocolSnapshot, bool)
}
