package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestClient(endpoint string) *NewsAPIClient {
	c := NewNewsAPIClient("test-key", "financial markets", "en", "publishedAt", 50, "Finletter/test", 5*time.Second)
	c.endpoint = endpoint
	return c
}

func TestNewsAPIFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "ok",
		"totalResults": 1,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "Reuters"},
				"title":       "Fed Holds Rates Steady",
				"description": "The Federal Reserve kept interest rates unchanged. Markets rallied.",
				"url":         "https://example.com/fed-rates",
				"publishedAt": "2026-08-30T12:00:00Z",
			},
		},
	}

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Fed Holds Rates Steady", a.Title)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged. Markets rallied.", a.Description)
	assert.Equal(t, "https://example.com/fed-rates", a.URL)
	assert.Equal(t, "Reuters", a.Source)
	assert.Equal(t, 2026, a.PublishedAt.Year())

	assert.Equal(t, []string{"financial markets"}, gotQuery["q"])
	assert.Equal(t, []string{"en"}, gotQuery["language"])
	assert.Equal(t, []string{"publishedAt"}, gotQuery["sortBy"])
	assert.Equal(t, []string{"50"}, gotQuery["pageSize"])
	assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])
}

func TestNewsAPIFetch_EmptyDescription(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "ok",
		"totalResults": 1,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "Bloomberg"},
				"title":       "Markets open flat",
				"description": nil,
				"url":         "https://example.com/flat",
				"publishedAt": "2026-08-30T09:30:00Z",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "", articles[0].Description)
}

func TestNewsAPIFetch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"code":    "apiKeyInvalid",
			"message": "Your API key is invalid or incorrect.",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	articles, err := client.Fetch(context.Background())

	assert.Equal(t, 0, len(articles))
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "apiKeyInvalid", apiErr.Code)
	assert.Equal(t, "Your API key is invalid or incorrect.", apiErr.Message)
}

func TestNewsAPIFetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background())

	if err == nil {
		t.Fatal("Expected network error when server is unreachable")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("Transport failure should not be reported as *APIError, got %v", apiErr)
	}
}

func TestNewsAPIFetch_InvalidTimestamp(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "ok",
		"totalResults": 1,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "Reuters"},
				"title":       "Oil prices climb",
				"description": "Crude futures rose.",
				"url":         "https://example.com/oil",
				"publishedAt": "not-a-timestamp",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, time.Time{}, articles[0].PublishedAt)
}
