package port

//go:generate mockgen -source=article_port.go -destination=../mocks/mock_article_port.go

import (
	"context"

	"news-service/app/domain"

	"github.com/google/uuid"
)

// ArticleUsecase defines article business logic interface
type ArticleUsecase interface {
	// Article management
	Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Reactions
	ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*domain.LikeResult, error)

	// Queries
	List(ctx context.Context, query domain.ListQuery) (*domain.ArticlePage, error)
	Featured(ctx context.Context) ([]*domain.Article, error)
	Categories(ctx context.Context) ([]string, error)
}

// ArticleRepository defines article data access interface
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// IncrementViews bumps the view counter and returns the updated article
	// in a single statement.
	IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleLike flips the user's like on the article and reports the new
	// state together with the resulting like count.
	ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (liked bool, likes int, err error)

	List(ctx context.Context, query domain.ListQuery) ([]*domain.Article, int, error)
	Featured(ctx context.Context, limit int) ([]*domain.Article, error)
	Categories(ctx context.Context) ([]string, error)

	// InsertIfNew stores the article unless one with the same title already
	// exists; it reports whether a row was written.
	InsertIfNew(ctx context.Context, article *domain.Article) (bool, error)
}
