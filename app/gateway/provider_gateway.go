package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"news-service/app/domain"
	"news-service/app/driver/newsapi"
	"news-service/app/port"
)

// HeadlineClient is the slice of the NewsAPI driver the gateway needs.
type HeadlineClient interface {
	TopHeadlines(ctx context.Context, category string) ([]newsapi.Headline, error)
}

// ProviderGateway translates provider headlines into domain articles. It
// owns the category mapping and the normalization rules so the rest of the
// service never sees provider-shaped data.
type ProviderGateway struct {
	client HeadlineClient
	logger *slog.Logger
}

// NewProviderGateway creates a new provider gateway
func NewProviderGateway(client HeadlineClient, logger *slog.Logger) port.ProviderGateway {
	return &ProviderGateway{
		client: client,
		logger: logger.With("component", "provider_gateway"),
	}
}

// TopHeadlines fetches and normalizes headlines for one internal category.
func (g *ProviderGateway) TopHeadlines(ctx context.Context, category domain.Category) ([]*domain.Article, error) {
	key, err := domain.ProviderCategory(category)
	if err != nil {
		return nil, err
	}

	headlines, err := g.client.TopHeadlines(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch headlines for %s: %w", category, err)
	}

	articles := make([]*domain.Article, 0, len(headlines))
	skipped := 0
	for _, h := range headlines {
		raw := domain.ProviderArticle{
			Title:       h.Title,
			Description: h.Description,
			Content:     h.Content,
			ImageURL:    h.URLToImage,
		}
		article, ok := raw.Normalize(category)
		if !ok {
			skipped++
			continue
		}
		articles = append(articles, article)
	}

	if skipped > 0 {
		g.logger.Debug("Skipped unusable headlines", "category", category, "skipped", skipped)
	}
	return articles, nil
}
