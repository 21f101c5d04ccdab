package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of article categories.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategorySports        Category = "Sports"
	CategoryPolitics      Category = "Politics"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryBusiness      Category = "Business"
)

// AllCategories returns every supported category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryTechnology,
		CategorySports,
		CategoryPolitics,
		CategoryEntertainment,
		CategoryHealth,
		CategoryBusiness,
	}
}

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategorySports, CategoryPolitics,
		CategoryEntertainment, CategoryHealth, CategoryBusiness:
		return true
	}
	return false
}

// Article represents a news article
type Article struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	Category    Category    `json:"category"`
	ImageURL    string      `json:"imageUrl"`
	Views       int64       `json:"views"`
	Likes       []uuid.UUID `json:"likes"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// LikeCount returns the number of distinct users who like the article.
func (a *Article) LikeCount() int {
	return len(a.Likes)
}

// ArticleDraft carries the caller-supplied fields for a new article.
type ArticleDraft struct {
	Title       string
	Description string
	Content     string
	Category    string
	ImageURL    string
}

// NewArticle validates a draft and builds a persistable article.
func NewArticle(draft ArticleDraft) (*Article, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	content := strings.TrimSpace(draft.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	category := Category(strings.TrimSpace(draft.Category))
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, draft.Category)
	}

	now := time.Now().UTC()
	return &Article{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Content:     content,
		Category:    category,
		ImageURL:    strings.TrimSpace(draft.ImageURL),
		Views:       0,
		Likes:       []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ArticleUpdate holds a partial update; nil fields are left untouched.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Content     *string
	Category    *Category
	ImageURL    *string
}

// Empty reports whether the update changes nothing.
func (u ArticleUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Content == nil &&
		u.Category == nil && u.ImageURL == nil
}

// Validate rejects updates that would put the article into an invalid state.
func (u ArticleUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if u.Category != nil && !u.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, *u.Category)
	}
	return nil
}
