package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// providerCategories maps internal categories onto the upstream provider's
// category keys. The map is total over AllCategories; an unmapped category
// is a programming error and is reported rather than silently skipped.
var providerCategories = map[Category]string{
	CategoryTechnology:    "technology",
	CategorySports:        "sports",
	CategoryPolitics:      "general",
	CategoryEntertainment: "entertainment",
	CategoryHealth:        "health",
	CategoryBusiness:      "business",
}

// ProviderCategory returns the upstream category key for an internal one.
func ProviderCategory(c Category) (string, error) {
	key, ok := providerCategories[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnmappedCategory, c)
	}
	return key, nil
}

// ProviderArticle is a raw headline as delivered by the upstream provider.
type ProviderArticle struct {
	Title       string
	Description string
	Content     string
	ImageURL    string
}

// Normalize converts a raw provider article into a storable one. It returns
// false when the article is unusable (blank title). Missing descriptions
// become empty strings and missing content falls back to the description.
func (p ProviderArticle) Normalize(category Category) (*Article, bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, false
	}

	description := strings.TrimSpace(p.Description)
	content := strings.TrimSpace(p.Content)
	if content == "" {
		content = description
	}

	now := time.Now().UTC()
	return &Article{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Content:     content,
		Category:    category,
		ImageURL:    strings.TrimSpace(p.ImageURL),
		Views:       0,
		Likes:       []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, true
}

// IngestResult reports what a full ingestion run accomplished.
type IngestResult struct {
	TotalFetched  int            `json:"totalFetched"`
	TotalInserted int            `json:"totalInserted"`
	ByCategory    map[string]int `json:"byCategory"`
	Failed        []string       `json:"failedCategories,omitempty"`
}
