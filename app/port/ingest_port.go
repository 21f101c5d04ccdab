package port

//go:generate mockgen -source=ingest_port.go -destination=../mocks/mock_ingest_port.go

import (
	"context"

	"news-service/app/domain"
)

// IngestUsecase defines the headline ingestion business logic interface
type IngestUsecase interface {
	// Run fetches headlines for every category and stores the new ones.
	Run(ctx context.Context) (*domain.IngestResult, error)
}

// ProviderGateway translates between the upstream news provider and the
// domain model.
type ProviderGateway interface {
	// TopHeadlines fetches current headlines for one internal category,
	// already normalized into storable articles.
	TopHeadlines(ctx context.Context, category domain.Category) ([]*domain.Article, error)
}
