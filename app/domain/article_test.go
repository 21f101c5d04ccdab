package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	tests := []struct {
		name    string
		draft   ArticleDraft
		wantErr error
	}{
		{
			name: "valid draft",
			draft: ArticleDraft{
				Title:       "Quantum chips ship",
				Description: "A short summary",
				Content:     "The full story",
				Category:    "Technology",
			},
		},
		{
			name: "missing title",
			draft: ArticleDraft{
				Description: "summary",
				Content:     "body",
				Category:    "Sports",
			},
			wantErr: ErrValidation,
		},
		{
			name: "whitespace title",
			draft: ArticleDraft{
				Title:       "   ",
				Description: "summary",
				Content:     "body",
				Category:    "Sports",
			},
			wantErr: ErrValidation,
		},
		{
			name: "missing description",
			draft: ArticleDraft{
				Title:    "A title",
				Content:  "body",
				Category: "Health",
			},
			wantErr: ErrValidation,
		},
		{
			name: "missing content",
			draft: ArticleDraft{
				Title:       "A title",
				Description: "summary",
				Category:    "Health",
			},
			wantErr: ErrValidation,
		},
		{
			name: "unknown category",
			draft: ArticleDraft{
				Title:       "A title",
				Description: "summary",
				Content:     "body",
				Category:    "Weather",
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "category is case sensitive",
			draft: ArticleDraft{
				Title:       "A title",
				Description: "summary",
				Content:     "body",
				Category:    "technology",
			},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := NewArticle(tt.draft)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, "", article.ID.String())
			assert.Equal(t, int64(0), article.Views)
			assert.Empty(t, article.Likes)
			assert.Equal(t, article.CreatedAt, article.UpdatedAt)
		})
	}
}

func TestNewArticle_TrimsFields(t *testing.T) {
	article, err := NewArticle(ArticleDraft{
		Title:       "  Padded title  ",
		Description: " summary ",
		Content:     " body ",
		Category:    "Business",
	})
	require.NoError(t, err)

	assert.Equal(t, "Padded title", article.Title)
	assert.Equal(t, "summary", article.Description)
	assert.Equal(t, "body", article.Content)
}

func TestArticleUpdate_Validate(t *testing.T) {
	empty := ""
	badCategory := Category("Weather")
	goodCategory := CategorySports
	title := "New title"

	assert.NoError(t, ArticleUpdate{Title: &title, Category: &goodCategory}.Validate())
	assert.ErrorIs(t, ArticleUpdate{Title: &empty}.Validate(), ErrValidation)
	assert.ErrorIs(t, ArticleUpdate{Category: &badCategory}.Validate(), ErrInvalidCategory)
}

func TestArticleUpdate_Empty(t *testing.T) {
	title := "t"
	assert.True(t, ArticleUpdate{}.Empty())
	assert.False(t, ArticleUpdate{Title: &title}.Empty())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("weather").Valid())
}
