package source

import (
	"context"
	"time"
)

// Article is a single fetched news article. Immutable once returned
// from a Source.
type Article struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
}

// Source pulls a finite batch of articles from one upstream query.
type Source interface {
	Fetch(ctx context.Context) ([]Article, error)
	Name() string
}
