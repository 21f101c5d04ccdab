package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"news-service/app/domain"
	"news-service/app/port"
	apperrors "news-service/app/utils/errors"
)

// SessionCookieName is the cookie browsers carry the session token in.
const SessionCookieName = "news_session"

// claimsContextKey is where RequireAuth stores the verified claims.
const claimsContextKey = "claims"

// AuthMiddleware guards routes with credential verification
type AuthMiddleware struct {
	credentials port.CredentialManager
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(credentials port.CredentialManager, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		credentials: credentials,
		logger:      logger,
	}
}

// RequireAuth verifies the session credential and stores the claims on the
// request context. Requests without a verifiable credential are rejected.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)

			claims, err := m.credentials.Verify(token)
			if err != nil {
				m.logger.Debug("credential verification failed",
					"error", err, "path", c.Request().URL.Path)
				return unauthorizedResponse(c, err)
			}

			c.Set(claimsContextKey, claims)
			c.Set("user_id", claims.UserID.String())
			c.Set("username", claims.Username)
			c.Set("user_role", string(claims.Role))

			return next(c)
		}
	}
}

// RequireAdmin rejects any request whose verified claims do not carry the
// admin role. A request with no resolved claims is treated as non-admin.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return unauthorizedResponse(c, domain.ErrCredentialMissing)
			}
			if !claims.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error": "admin access required",
					"code":  string(apperrors.ErrCodeForbidden),
				})
			}
			return next(c)
		}
	}
}

// ExtractToken pulls the session token from the Authorization header or,
// failing that, the session cookie. Both transports feed the same
// verification path.
func ExtractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// GetClaims returns the verified claims set by RequireAuth, or nil.
func GetClaims(c echo.Context) *domain.Claims {
	claims, ok := c.Get(claimsContextKey).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}

func unauthorizedResponse(c echo.Context, err error) error {
	message := "authentication required"
	code := apperrors.ErrCodeUnauthorized

	switch {
	case errors.Is(err, domain.ErrCredentialExpired):
		message = "token has expired"
		code = apperrors.ErrCodeTokenExpired
	case errors.Is(err, domain.ErrCredentialMalformed),
		errors.Is(err, domain.ErrCredentialInvalidSignature):
		message = "invalid token"
		code = apperrors.ErrCodeInvalidToken
	}

	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"error": message,
		"code":  string(code),
	})
}
