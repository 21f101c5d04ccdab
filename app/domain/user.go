package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole determines what a user is allowed to do.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether the role is a known value.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	AvatarURL    string    `json:"avatarUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser builds a user with a freshly generated ID. The password must
// already be hashed; plain-text passwords never reach the domain layer.
func NewUser(username, email, passwordHash string, role UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrValidation)
	}
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UserUpdate holds a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	AvatarURL    *string
}

// Apply merges the update into the user and bumps UpdatedAt.
func (u *User) Apply(update UserUpdate) error {
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return fmt.Errorf("%w: username cannot be empty", ErrValidation)
		}
		u.Username = username
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: email is invalid", ErrValidation)
		}
		u.Email = email
	}
	if update.PasswordHash != nil {
		if *update.PasswordHash == "" {
			return fmt.Errorf("%w: password hash cannot be empty", ErrValidation)
		}
		u.PasswordHash = *update.PasswordHash
	}
	if update.FirstName != nil {
		u.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		u.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*update.AvatarURL)
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// ProfileUpdate carries a caller-requested profile change across the port
// boundary. The password is plain text; hashing happens in the usecase.
type ProfileUpdate struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Empty reports whether the update changes nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil &&
		p.FirstName == nil && p.LastName == nil && p.AvatarURL == nil
}
