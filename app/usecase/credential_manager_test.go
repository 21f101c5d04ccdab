package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-service/app/domain"
)

const testSecret = "unit-test-secret-key-0123456789"

func testUser(t *testing.T, role domain.UserRole) *domain.User {
	t.Helper()
	user, err := domain.NewUser("reader", "reader@example.com", "$2a$10$hash", role)
	require.NoError(t, err)
	return user
}

func TestCredentialManager_IssueAndVerify(t *testing.T) {
	manager := NewCredentialManager(testSecret, 24*time.Hour)
	user := testUser(t, domain.RoleAdmin)

	token, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestCredentialManager_Verify_Expired(t *testing.T) {
	manager := NewCredentialManager(testSecret, -time.Minute)
	user := testUser(t, domain.RoleUser)

	token, err := manager.Issue(user)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, domain.ErrCredentialExpired)
}

func TestCredentialManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewCredentialManager(testSecret, time.Hour)
	verifier := NewCredentialManager("a-completely-different-secret!", time.Hour)

	token, err := issuer.Issue(testUser(t, domain.RoleUser))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrCredentialInvalidSignature)
}

func TestCredentialManager_Verify_Malformed(t *testing.T) {
	manager := NewCredentialManager(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty token", "", domain.ErrCredentialMissing},
		{"garbage token", "not.a.jwt", domain.ErrCredentialMalformed},
		{"random string", "hello world", domain.ErrCredentialMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Verify(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCredentialManager_Verify_RejectsUnsignedAlg(t *testing.T) {
	manager := NewCredentialManager(testSecret, time.Hour)

	// alg=none tokens must never verify, whatever their payload says
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":      "3f9b6a54-5f4f-4c1e-9e7b-0a1b2c3d4e5f",
		"username": "intruder",
		"role":     "admin",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestCredentialManager_Verify_BadSubject(t *testing.T) {
	manager := NewCredentialManager(testSecret, time.Hour).(*CredentialManager)

	claims := sessionClaims{
		Username: "reader",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, domain.ErrCredentialMalformed)
}
