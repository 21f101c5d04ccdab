package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"news-service/app/domain"

	"github.com/google/uuid"
)

// AuthUsecase defines registration and login business logic interface
type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (*domain.AuthSession, error)
	// Login accepts either a username or an email as the identifier.
	Login(ctx context.Context, identifier, password string) (*domain.AuthSession, error)
}

// UserUsecase defines user management business logic interface
type UserUsecase interface {
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	// UpdateProfile changes the given fields; nil fields are left alone.
	// Passwords arrive in plain text and are hashed here.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.User, error)

	// Admin operations
	Create(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserRepository defines user data access interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}
