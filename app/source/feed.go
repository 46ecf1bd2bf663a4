package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedSource pulls articles from a single RSS/Atom feed instead of
// NewsAPI. Feed items are normalized into the same Article shape the
// rest of the pipeline consumes.
type FeedSource struct {
	url        string
	userAgent  string
	parser     *gofeed.Parser
	httpClient *http.Client
}

func NewFeedSource(url, userAgent string, timeout time.Duration) *FeedSource {
	return &FeedSource{
		url:        url,
		userAgent:  userAgent,
		parser:     gofeed.NewParser(),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *FeedSource) Name() string {
	return "RSS"
}

func (s *FeedSource) Fetch(ctx context.Context) ([]Article, error) {
	data, err := s.fetchFeed(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			Source:      feed.Title,
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, article)
	}

	slog.Debug("Fetched articles from feed", "feed", feed.Title, "count", len(articles))

	return articles, nil
}

// fetchFeed fetches feed data from the given URL
func (s *FeedSource) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}
