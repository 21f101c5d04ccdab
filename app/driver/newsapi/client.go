package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 15 * time.Second

// Headline is one article as returned by the provider's top-headlines
// endpoint. Fields the service never reads are omitted from the mapping.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URLToImage  string `json:"urlToImage"`
}

type headlinesResponse struct {
	Status       string     `json:"status"`
	Code         string     `json:"code"`
	Message      string     `json:"message"`
	TotalResults int        `json:"totalResults"`
	Articles     []Headline `json:"articles"`
}

// Client talks to the NewsAPI top-headlines endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a NewsAPI client.
func NewClient(baseURL, apiKey, country string, pageSize int, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		country:  country,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger.With("component", "newsapi_client"),
	}
}

// TopHeadlines fetches current headlines for one provider category key.
func (c *Client) TopHeadlines(ctx context.Context, category string) ([]Headline, error) {
	endpoint, err := url.Parse(c.baseURL + "/v2/top-headlines")
	if err != nil {
		return nil, fmt.Errorf("invalid provider URL: %w", err)
	}

	params := url.Values{}
	params.Set("country", c.country)
	params.Set("category", category)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("apiKey", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	var body headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		c.logger.Warn("Provider returned an error",
			"status_code", resp.StatusCode,
			"code", body.Code,
			"message", body.Message,
			"category", category)
		return nil, fmt.Errorf("provider error (%d %s): %s", resp.StatusCode, body.Code, body.Message)
	}

	c.logger.Debug("Fetched headlines",
		"category", category,
		"total_results", body.TotalResults,
		"returned", len(body.Articles))

	return body.Articles, nil
}
