package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified identity carried by a session credential.
type Claims struct {
	UserID    uuid.UUID
	Username  string
	Role      UserRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the credential belongs to an admin.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthSession is the result of a successful register or login.
type AuthSession struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
