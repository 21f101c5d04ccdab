package usecase

import (
	"context"
	"errors"
	"log/slog"

	"news-service/app/domain"
	"news-service/app/port"
	apperrors "news-service/app/utils/errors"
)

// IngestUseCase pulls headlines from the provider and stores the new ones.
type IngestUseCase struct {
	provider    port.ProviderGateway
	articleRepo port.ArticleRepository
	logger      *slog.Logger
}

// NewIngestUseCase creates a new IngestUseCase instance
func NewIngestUseCase(provider port.ProviderGateway, articleRepo port.ArticleRepository, logger *slog.Logger) port.IngestUsecase {
	return &IngestUseCase{
		provider:    provider,
		articleRepo: articleRepo,
		logger:      logger.With("component", "ingest_usecase"),
	}
}

// Run ingests every category. A failing category is recorded and skipped so
// one provider hiccup cannot sink the whole run; only a run where every
// category fails is reported as an error.
func (uc *IngestUseCase) Run(ctx context.Context) (*domain.IngestResult, error) {
	result := &domain.IngestResult{
		ByCategory: make(map[string]int),
	}

	categories := domain.AllCategories()
	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewInternal(err)
		}

		articles, err := uc.provider.TopHeadlines(ctx, category)
		if err != nil {
			// A category with no provider mapping is a programming
			// error, not a provider hiccup; abort the whole run.
			if errors.Is(err, domain.ErrUnmappedCategory) {
				return nil, apperrors.NewInternal(err)
			}
			uc.logger.Warn("Category ingestion failed",
				"category", category, "error", err)
			result.Failed = append(result.Failed, string(category))
			continue
		}

		result.TotalFetched += len(articles)

		inserted := 0
		for _, article := range articles {
			ok, err := uc.articleRepo.InsertIfNew(ctx, article)
			if err != nil {
				uc.logger.Warn("Failed to store headline",
					"category", category, "title", article.Title, "error", err)
				continue
			}
			if ok {
				inserted++
			}
		}

		result.ByCategory[string(category)] = inserted
		result.TotalInserted += inserted

		uc.logger.Info("Category ingested",
			"category", category,
			"fetched", len(articles),
			"inserted", inserted)
	}

	if len(result.Failed) == len(categories) {
		return nil, apperrors.New(apperrors.ErrCodeUpstreamError, "news provider unavailable")
	}

	uc.logger.Info("Ingestion run finished",
		"total_fetched", result.TotalFetched,
		"total_inserted", result.TotalInserted,
		"failed_categories", len(result.Failed))
	return result, nil
}
