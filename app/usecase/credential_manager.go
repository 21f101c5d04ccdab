package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"news-service/app/domain"
	"news-service/app/port"
)

// sessionClaims is the JWT payload for issued credentials.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CredentialManager issues and verifies HMAC-signed session tokens. Tokens
// are self-contained: verification needs only the shared secret, no
// database round trip.
type CredentialManager struct {
	secret []byte
	ttl    time.Duration
}

// NewCredentialManager creates a new credential manager
func NewCredentialManager(secret string, ttl time.Duration) port.CredentialManager {
	return &CredentialManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token carrying the user's identity and role.
func (m *CredentialManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and lifetime and returns its claims.
func (m *CredentialManager) Verify(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, domain.ErrCredentialMissing
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrCredentialExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrCredentialInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrCredentialMalformed
		default:
			return nil, domain.ErrCredentialMalformed
		}
	}
	if !token.Valid {
		return nil, domain.ErrCredentialMalformed
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrCredentialMalformed
	}

	role := domain.UserRole(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrCredentialMalformed
	}

	out := &domain.Claims{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// TTL returns the lifetime stamped into issued credentials.
func (m *CredentialManager) TTL() time.Duration {
	return m.ttl
}
