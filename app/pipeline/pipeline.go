package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finletter/app/digest"
	"finletter/app/output"
	"finletter/app/source"
)

// ErrNoArticles is returned when no fetched article matched any
// sector. The run produces no output file; callers may treat this as
// a clean no-op rather than a failure.
var ErrNoArticles = errors.New("no relevant articles after classification")

// Pipeline runs one newsletter generation end to end: fetch articles,
// classify and summarize them, render the HTML document, write it out
// and optionally open it in a browser. Stages run sequentially; the
// first error aborts the run with no output file.
type Pipeline struct {
	src       source.Source
	processor *digest.Processor
	renderer  *digest.Renderer
	sink      output.Sink
	opener    output.Opener // nil disables browser opening
}

func New(src source.Source, processor *digest.Processor, renderer *digest.Renderer, sink output.Sink, opener output.Opener) *Pipeline {
	return &Pipeline{
		src:       src,
		processor: processor,
		renderer:  renderer,
		sink:      sink,
		opener:    opener,
	}
}

// Run executes the pipeline once and returns the path of the written
// newsletter file.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (string, error) {
	startTime := time.Now()
	date := now.Format("2006-01-02")

	slog.Info("Fetching articles", "source", p.src.Name())
	articles, err := p.src.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch articles: %w", err)
	}
	slog.Info("Pulled raw articles", "count", len(articles))

	newsletter := p.processor.Run(date, articles)
	if len(newsletter.Groups) == 0 {
		return "", ErrNoArticles
	}

	html, err := p.renderer.Run(newsletter)
	if err != nil {
		return "", fmt.Errorf("failed to render newsletter: %w", err)
	}

	filename := fmt.Sprintf("financial_newsletter_%s.html", date)
	path, err := p.sink.Write(filename, html)
	if err != nil {
		return "", fmt.Errorf("failed to write newsletter: %w", err)
	}

	if p.opener != nil {
		if err := p.opener.Open(path); err != nil {
			slog.Warn("Failed to open newsletter in browser", "path", path, "error", err)
		}
	}

	slog.Info("Newsletter generated",
		"path", path,
		"sectors", len(newsletter.Groups),
		"duration", time.Since(startTime))

	return path, nil
}
