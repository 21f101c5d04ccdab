package gateway

import (
	"context"
	"log/slog"
	"mime/multipart"
	"strings"

	"news-service/app/port"
)

// PlaceholderImageURL is used when neither an explicit URL nor an upload is
// available.
const PlaceholderImageURL = "https://placehold.co/600x400?text=News"

// MediaGateway implements port.MediaResolver. Resolution order: explicit
// URL, then uploaded file, then placeholder.
type MediaGateway struct {
	files  port.FileStore
	logger *slog.Logger
}

// NewMediaGateway creates a new media gateway
func NewMediaGateway(files port.FileStore, logger *slog.Logger) port.MediaResolver {
	return &MediaGateway{
		files:  files,
		logger: logger.With("component", "media_gateway"),
	}
}

// Resolve picks the article image. A failed upload is logged and degrades
// to the placeholder instead of failing the surrounding request.
func (g *MediaGateway) Resolve(ctx context.Context, explicitURL string, file *multipart.FileHeader) string {
	if url := strings.TrimSpace(explicitURL); url != "" {
		return url
	}

	if file != nil {
		url, err := g.files.Save(ctx, file)
		if err == nil {
			return url
		}
		g.logger.Warn("Failed to store uploaded image, using placeholder",
			"filename", file.Filename, "error", err)
	}

	return PlaceholderImageURL
}
