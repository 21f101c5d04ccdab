package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"news-service/app/domain"
	"news-service/app/port"
)

// featuredCount is the number of newest articles shown on the landing view.
const featuredCount = 5

// ArticleUseCase implements article business logic
type ArticleUseCase struct {
	articleRepo port.ArticleRepository
	logger      *slog.Logger
}

// NewArticleUseCase creates a new ArticleUseCase instance
func NewArticleUseCase(articleRepo port.ArticleRepository, logger *slog.Logger) port.ArticleUsecase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger.With("component", "article_usecase"),
	}
}

// Create validates the draft and stores the article.
func (uc *ArticleUseCase) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	article, err := domain.NewArticle(draft)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Info("Article created", "article_id", article.ID, "category", article.Category)
	return article, nil
}

// Get returns the article and counts the read as a view.
func (uc *ArticleUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	article, err := uc.articleRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}
	return article, nil
}

// Update applies a partial update. An empty update is a read, not a write:
// it returns the current state without bumping views or updated_at.
func (uc *ArticleUseCase) Update(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
	if err := update.Validate(); err != nil {
		return nil, toAppError(err)
	}

	if update.Empty() {
		article, err := uc.articleRepo.GetByID(ctx, id)
		if err != nil {
			return nil, toAppError(err)
		}
		return article, nil
	}

	article, err := uc.articleRepo.Update(ctx, id, update)
	if err != nil {
		return nil, toAppError(err)
	}

	uc.logger.Info("Article updated", "article_id", id)
	return article, nil
}

// Delete removes the article.
func (uc *ArticleUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.articleRepo.Delete(ctx, id); err != nil {
		return toAppError(err)
	}
	uc.logger.Info("Article deleted", "article_id", id)
	return nil
}

// ToggleLike flips the user's like and reports the new state.
func (uc *ArticleUseCase) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*domain.LikeResult, error) {
	liked, likes, err := uc.articleRepo.ToggleLike(ctx, articleID, userID)
	if err != nil {
		return nil, toAppError(err)
	}
	return &domain.LikeResult{Likes: likes, Liked: liked}, nil
}

// List returns one page of articles with pagination metadata.
func (uc *ArticleUseCase) List(ctx context.Context, query domain.ListQuery) (*domain.ArticlePage, error) {
	articles, total, err := uc.articleRepo.List(ctx, query)
	if err != nil {
		return nil, toAppError(err)
	}

	return &domain.ArticlePage{
		Articles:   articles,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// Featured returns the newest articles.
func (uc *ArticleUseCase) Featured(ctx context.Context) ([]*domain.Article, error) {
	articles, err := uc.articleRepo.Featured(ctx, featuredCount)
	if err != nil {
		return nil, toAppError(err)
	}
	return articles, nil
}

// Categories returns the categories that currently have articles.
func (uc *ArticleUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.articleRepo.Categories(ctx)
	if err != nil {
		return nil, toAppError(err)
	}
	return categories, nil
}
