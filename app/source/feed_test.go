package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Market Wire</title>
    <link>https://example.com</link>
    <description>Financial headlines</description>
    <item>
      <title>Banks report record earnings</title>
      <link>https://example.com/banks</link>
      <description>Quarterly earnings beat expectations. Analysts raised targets.</description>
      <pubDate>Sat, 29 Aug 2026 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Chip maker expands production</title>
      <link>https://example.com/chips</link>
      <description>A new fabrication plant opens next year.</description>
      <pubDate>Sat, 29 Aug 2026 08:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

func TestFeedSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeedXML))
	}))
	defer srv.Close()

	src := NewFeedSource(srv.URL, "Finletter/test", 5*time.Second)
	articles, err := src.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "Banks report record earnings", a.Title)
	assert.Equal(t, "Quarterly earnings beat expectations. Analysts raised targets.", a.Description)
	assert.Equal(t, "https://example.com/banks", a.URL)
	assert.Equal(t, "Market Wire", a.Source)
	assert.Equal(t, 2026, a.PublishedAt.Year())
}

func TestFeedSourceFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewFeedSource(srv.URL, "Finletter/test", 5*time.Second)
	_, err := src.Fetch(context.Background())

	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
}

func TestFeedSourceFetch_InvalidFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	src := NewFeedSource(srv.URL, "Finletter/test", 5*time.Second)
	_, err := src.Fetch(context.Background())

	if err == nil {
		t.Fatal("Expected parse error for non-feed body")
	}
}
