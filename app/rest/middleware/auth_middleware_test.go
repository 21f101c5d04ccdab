package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-service/app/domain"
	"news-service/app/usecase"
	"news-service/app/utils/logger"
)

const testSecret = "middleware-test-secret-0123456789"

func newTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	manager := usecase.NewCredentialManager(testSecret, time.Hour)
	return NewAuthMiddleware(manager, testLogger)
}

func issueToken(t *testing.T, role domain.UserRole) (string, *domain.User) {
	t.Helper()

	user, err := domain.NewUser("reader", "reader@example.com", "$2a$10$hash", role)
	require.NoError(t, err)

	manager := usecase.NewCredentialManager(testSecret, time.Hour)
	token, err := manager.Issue(user)
	require.NoError(t, err)

	return token, user
}

func runRequest(t *testing.T, mw echo.MiddlewareFunc, decorate func(*http.Request)) (*httptest.ResponseRecorder, *domain.Claims) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/news", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenClaims *domain.Claims
	handler := mw(func(c echo.Context) error {
		seenClaims = GetClaims(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, seenClaims
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	mw := newTestMiddleware(t)
	token, user := issueToken(t, domain.RoleUser)

	rec, claims := runRequest(t, mw.RequireAuth(), func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "reader", claims.Username)
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	mw := newTestMiddleware(t)
	token, user := issueToken(t, domain.RoleUser)

	rec, claims := runRequest(t, mw.RequireAuth(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRequireAuth_Rejections(t *testing.T) {
	mw := newTestMiddleware(t)

	expiredManager := usecase.NewCredentialManager(testSecret, -time.Minute)
	user, err := domain.NewUser("reader", "reader@example.com", "$2a$10$hash", domain.RoleUser)
	require.NoError(t, err)
	expiredToken, err := expiredManager.Issue(user)
	require.NoError(t, err)

	foreignManager := usecase.NewCredentialManager("some-other-secret-0123456789", time.Hour)
	foreignToken, err := foreignManager.Issue(user)
	require.NoError(t, err)

	tests := []struct {
		name     string
		decorate func(*http.Request)
		wantCode string
	}{
		{
			name:     "no credential",
			decorate: nil,
			wantCode: "AUTHENTICATION_ERROR",
		},
		{
			name: "expired token",
			decorate: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+expiredToken)
			},
			wantCode: "TOKEN_EXPIRED",
		},
		{
			name: "wrong signature",
			decorate: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+foreignToken)
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name: "garbage token",
			decorate: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, claims := runRequest(t, mw.RequireAuth(), tt.decorate)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, claims)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	mw := newTestMiddleware(t)

	adminToken, _ := issueToken(t, domain.RoleAdmin)
	userToken, _ := issueToken(t, domain.RoleUser)

	chain := func(req *http.Request) (*httptest.ResponseRecorder, *domain.Claims) {
		// RequireAdmin always runs behind RequireAuth
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seenClaims *domain.Claims
		handler := mw.RequireAuth()(mw.RequireAdmin()(func(c echo.Context) error {
			seenClaims = GetClaims(c)
			return c.NoContent(http.StatusOK)
		}))
		require.NoError(t, handler(c))
		return rec, seenClaims
	}

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/news/x", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)

		rec, claims := chain(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, claims)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/news/x", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)

		rec, _ := chain(req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTHORIZATION_ERROR")
	})

	t.Run("anonymous rejected before role check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/news/x", nil)

		rec, _ := chain(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractToken_HeaderWinsOverCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "header-token", ExtractToken(c))
}

func TestExtractToken_IgnoresNonBearerSchemes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "", ExtractToken(c))
}
