package sessions

import (
	"time"

	"github.com/paletogarage/auth-gateway/roles"
)

// Session is the server-side record behind one session cookie. It composites
// the Discord identity, the roster profile and the derived role; it exists
// only when an authentication run resolved all three.
type Session struct {
	// Discord identity
	UserID        string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`

	// Derived authorization
	Role roles.Role `json:"role"`

	// Roster profile
	EmployeeName string `json:"employeeName"`
	Grade        string `json:"grade"`
	EmployeeID   string `json:"employeeId"`
	RIB          string `json:"rib"`
	Phone        string `json:"tel"`
	Email        string `json:"gmail"`

	// Session management
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the session's absolute TTL has elapsed at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
