package port

//go:generate mockgen -source=media_port.go -destination=../mocks/mock_media_port.go

import (
	"context"
	"mime/multipart"
)

// FileStore persists uploaded files and returns their public URLs.
type FileStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// MediaResolver decides which image URL an article ends up with.
type MediaResolver interface {
	// Resolve picks the explicit URL when given, otherwise stores the
	// uploaded file, otherwise falls back to a placeholder. It never fails
	// the surrounding request.
	Resolve(ctx context.Context, explicitURL string, file *multipart.FileHeader) string
}
