package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"news-service/app/domain"
	"news-service/app/port"
	custommw "news-service/app/rest/middleware"
	apperrors "news-service/app/utils/errors"
	"news-service/app/utils/validator"
)

// UserHandler handles profile and user administration requests
type UserHandler struct {
	users     port.UserUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator.New(),
		logger:    logger,
	}
}

type updateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=128"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// Profile returns the authenticated user's account.
func (h *UserHandler) Profile(c echo.Context) error {
	claims := custommw.GetClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	user, err := h.users.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the fields present in the request on the caller's
// own account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims := custommw.GetClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), claims.UserID, domain.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create provisions an account with an explicit role.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Create(c.Request().Context(), req.Username, req.Email, req.Password, domain.UserRole(req.Role))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// List returns one page of user accounts.
func (h *UserHandler) List(c echo.Context) error {
	query := domain.NewListQuery("", "", intParam(c, "page"), intParam(c, "limit"), "", "")

	users, err := h.users.List(c.Request().Context(), query.Limit, query.Offset())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes a user account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid user id"))
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
