package sessions

import "github.com/google/uuid"

// Repo is the session store behind the session cookie. Operations are
// point reads and writes keyed by the opaque token; implementations must make
// each per-token operation atomic but need no cross-token coordination.
type Repo interface {
	// Upsert creates or replaces the session stored under token
	Upsert(token string, session Session) error

	// Get retrieves a live session; expired or unknown tokens return
	// ErrSessionNotFound
	Get(token string) (Session, error)

	// Delete removes a session; deleting an absent token is not an error
	Delete(token string) error
}

// NewToken mints a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}
