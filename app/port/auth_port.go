package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"time"

	"news-service/app/domain"
)

// CredentialManager issues and verifies stateless session credentials.
type CredentialManager interface {
	// Issue creates a signed token for the user.
	Issue(user *domain.User) (string, error)
	// Verify checks the token's signature and lifetime and returns the
	// embedded claims. Failures map onto the domain credential errors.
	Verify(token string) (*domain.Claims, error)
	// TTL is the lifetime stamped into issued credentials.
	TTL() time.Duration
}
