package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"news-service/app/domain"
	"news-service/app/port"
	apperrors "news-service/app/utils/errors"
)

// UserUseCase implements user management business logic
type UserUseCase struct {
	userRepo port.UserRepository
	logger   *slog.Logger
}

// NewUserUseCase creates a new UserUseCase instance
func NewUserUseCase(userRepo port.UserRepository, logger *slog.Logger) port.UserUsecase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger.With("component", "user_usecase"),
	}
}

// Profile returns the user's own account.
func (uc *UserUseCase) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, toAppError(err)
	}
	return user, nil
}

// UpdateProfile changes the given fields on the user's own account.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, profile domain.ProfileUpdate) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, toAppError(err)
	}
	if profile.Empty() {
		return user, nil
	}

	update := domain.UserUpdate{
		Username:  profile.Username,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		AvatarURL: profile.AvatarURL,
	}
	if profile.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*profile.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		hashStr := string(hash)
		update.PasswordHash = &hashStr
	}

	if err := user.Apply(update); err != nil {
		return nil, toAppError(err)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Info("Profile updated", "user_id", userID)
	return user, nil
}

// Create provisions an account with an explicit role, for the admin view.
func (uc *UserUseCase) Create(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	user, err := domain.NewUser(username, email, string(hash), role)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Info("User created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// List returns users for the admin view, newest first.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, toAppError(err)
	}
	return users, nil
}

// Delete removes a user account.
func (uc *UserUseCase) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return toAppError(err)
	}
	uc.logger.Info("User deleted", "user_id", userID)
	return nil
}
