package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryTechnology, "technology"},
		{CategorySports, "sports"},
		{CategoryPolitics, "general"},
		{CategoryEntertainment, "entertainment"},
		{CategoryHealth, "health"},
		{CategoryBusiness, "business"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got, err := ProviderCategory(tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviderCategory_Unmapped(t *testing.T) {
	_, err := ProviderCategory(Category("Weather"))
	assert.ErrorIs(t, err, ErrUnmappedCategory)
}

func TestProviderCategory_CoversAllCategories(t *testing.T) {
	for _, c := range AllCategories() {
		_, err := ProviderCategory(c)
		assert.NoError(t, err, string(c))
	}
}

func TestProviderArticle_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      ProviderArticle
		ok       bool
		wantDesc string
		wantBody string
	}{
		{
			name: "complete article",
			raw: ProviderArticle{
				Title:       "Markets rally",
				Description: "Stocks climb",
				Content:     "Full text",
				ImageURL:    "https://cdn.example.com/a.jpg",
			},
			ok:       true,
			wantDesc: "Stocks climb",
			wantBody: "Full text",
		},
		{
			name: "blank title rejected",
			raw:  ProviderArticle{Title: "   ", Description: "x"},
			ok:   false,
		},
		{
			name:     "missing content falls back to description",
			raw:      ProviderArticle{Title: "Markets rally", Description: "Stocks climb"},
			ok:       true,
			wantDesc: "Stocks climb",
			wantBody: "Stocks climb",
		},
		{
			name:     "missing description becomes empty",
			raw:      ProviderArticle{Title: "Markets rally"},
			ok:       true,
			wantDesc: "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, ok := tt.raw.Normalize(CategoryBusiness)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			require.NotNil(t, article)
			assert.Equal(t, tt.wantDesc, article.Description)
			assert.Equal(t, tt.wantBody, article.Content)
			assert.Equal(t, CategoryBusiness, article.Category)
			assert.Equal(t, int64(0), article.Views)
		})
	}
}
