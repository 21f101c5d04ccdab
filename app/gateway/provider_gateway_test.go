package gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-service/app/domain"
	"news-service/app/driver/newsapi"
	"news-service/app/utils/logger"
)

type fakeHeadlineClient struct {
	gotCategory string
	headlines   []newsapi.Headline
	err         error
}

func (f *fakeHeadlineClient) TopHeadlines(ctx context.Context, category string) ([]newsapi.Headline, error) {
	f.gotCategory = category
	return f.headlines, f.err
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, err := logger.New("debug")
	require.NoError(t, err)
	return l
}

func TestProviderGateway_TopHeadlines(t *testing.T) {
	client := &fakeHeadlineClient{
		headlines: []newsapi.Headline{
			{Title: "Markets rally", Description: "Stocks climb", Content: "Full text"},
			{Title: "   "}, // unusable, dropped during normalization
			{Title: "Second story"},
		},
	}

	gw := NewProviderGateway(client, testLogger(t))

	articles, err := gw.TopHeadlines(context.Background(), domain.CategoryPolitics)
	require.NoError(t, err)

	// Politics maps onto the provider's general bucket
	assert.Equal(t, "general", client.gotCategory)

	require.Len(t, articles, 2)
	assert.Equal(t, "Markets rally", articles[0].Title)
	assert.Equal(t, domain.CategoryPolitics, articles[0].Category)
	assert.Equal(t, "Second story", articles[1].Title)
}

func TestProviderGateway_TopHeadlines_UnmappedCategory(t *testing.T) {
	gw := NewProviderGateway(&fakeHeadlineClient{}, testLogger(t))

	_, err := gw.TopHeadlines(context.Background(), domain.Category("Weather"))
	assert.ErrorIs(t, err, domain.ErrUnmappedCategory)
}

func TestProviderGateway_TopHeadlines_ClientError(t *testing.T) {
	client := &fakeHeadlineClient{err: errors.New("connection refused")}
	gw := NewProviderGateway(client, testLogger(t))

	_, err := gw.TopHeadlines(context.Background(), domain.CategorySports)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
