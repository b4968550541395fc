package session

import (
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_id"

// TTL is how long a session cookie stays valid.
const TTL = 30 * 24 * time.Hour

// NewToken returns a fresh opaque session identifier. Generation is pure;
// nothing is persisted until a search resolves and a history row is written.
func NewToken() string {
	return uuid.New().String()
}
