package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"news-service/app/domain"
	"news-service/app/port"
	apperrors "news-service/app/utils/errors"
)

// AuthUseCase implements registration and login business logic
type AuthUseCase struct {
	userRepo    port.UserRepository
	credentials port.CredentialManager
	logger      *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(userRepo port.UserRepository, credentials port.CredentialManager, logger *slog.Logger) port.AuthUsecase {
	return &AuthUseCase{
		userRepo:    userRepo,
		credentials: credentials,
		logger:      logger.With("component", "auth_usecase"),
	}
}

// Register creates an account and immediately issues a session credential.
func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) (*domain.AuthSession, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	user, err := domain.NewUser(username, email, string(hash), domain.RoleUser)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, toAppError(err)
	}

	token, err := uc.credentials.Issue(user)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	uc.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return &domain.AuthSession{Token: token, User: user}, nil
}

// Login authenticates by username or email. Lookups and password mismatches
// both report invalid credentials so callers cannot probe which accounts
// exist.
func (uc *AuthUseCase) Login(ctx context.Context, identifier, password string) (*domain.AuthSession, error) {
	identifier = strings.TrimSpace(identifier)

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, toAppError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.logger.Warn("Failed login attempt", "username", user.Username)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := uc.credentials.Issue(user)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	uc.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return &domain.AuthSession{Token: token, User: user}, nil
}
