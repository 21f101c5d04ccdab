package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"news-service/app/port"
	custommw "news-service/app/rest/middleware"
	apperrors "news-service/app/utils/errors"
	"news-service/app/utils/validator"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authUsecase port.AuthUsecase
	sessionTTL  time.Duration
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, sessionTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessionTTL:  sessionTTL,
		validator:   validator.New(),
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type loginRequest struct {
	// Username also accepts an email address
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and opens a session for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, err)
	}

	session, err := h.authUsecase.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusCreated, session)
}

// Login authenticates by username or email and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, err)
	}

	session, err := h.authUsecase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusOK, session)
}

// Logout clears the session cookie. Tokens are stateless, so a client
// holding the bearer token simply stops sending it.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     custommw.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     custommw.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}
