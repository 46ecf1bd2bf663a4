package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const newsAPIEndpoint = "https://newsapi.org/v2/everything"

// APIError is returned when NewsAPI responds with a non-success
// status. Code and Message carry the error body NewsAPI sends
// alongside the status, when present.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("newsapi: HTTP %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("newsapi: HTTP %d", e.StatusCode)
}

// NewsAPIClient fetches articles from the NewsAPI.org "everything"
// endpoint. One request per run, no retries, no pagination.
type NewsAPIClient struct {
	apiKey     string
	query      string
	language   string
	sortBy     string
	pageSize   int
	userAgent  string
	endpoint   string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey, query, language, sortBy string, pageSize int, userAgent string, timeout time.Duration) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		query:      query,
		language:   language,
		sortBy:     sortBy,
		pageSize:   pageSize,
		userAgent:  userAgent,
		endpoint:   newsAPIEndpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", c.query)
	q.Set("language", c.language)
	q.Set("sortBy", c.sortBy)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("apiKey", c.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
		return nil, apiErr
	}

	var raw everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Source:      item.Source.Name,
			PublishedAt: publishedAt,
		})
	}

	slog.Debug("Fetched articles from NewsAPI",
		"total_results", raw.TotalResults,
		"returned", len(articles))

	return articles, nil
}

type everythingResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

type rawArticle struct {
	Source      rawSource `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt string    `json:"publishedAt"`
}

type rawSource struct {
	Name string `json:"name"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
