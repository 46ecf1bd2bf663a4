package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"finletter/app/cfg"
	"finletter/app/digest"
	"finletter/app/output"
	"finletter/app/pipeline"
	"finletter/app/source"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Running financial newsletter bot",
		"version", appCfg.Version,
		"date", time.Now().Format("2006-01-02"))

	var src source.Source
	if appCfg.FeedURL != "" {
		src = source.NewFeedSource(appCfg.FeedURL, appCfg.UserAgent, appCfg.GetTimeout())
	} else {
		src = source.NewNewsAPIClient(appCfg.NewsAPIKey, appCfg.Query, appCfg.Language,
			appCfg.SortBy, appCfg.PageSize, appCfg.UserAgent, appCfg.GetTimeout())
	}

	sectors := digest.DefaultSectors()
	if err := sectors.Validate(); err != nil {
		slog.Error("Invalid sector table", "error", err)
		os.Exit(1)
	}

	// Template-missing is a fatal startup error, checked before any
	// network call is made
	renderer, err := digest.NewRenderer(appCfg.TemplatePath)
	if err != nil {
		slog.Error("Failed to load newsletter template", "path", appCfg.TemplatePath, "error", err)
		os.Exit(1)
	}

	sink := output.NewFileSink(appCfg.OutputDir)
	var opener output.Opener
	if appCfg.OpenBrowser {
		opener = output.Browser{}
	}

	p := pipeline.New(src, digest.NewProcessor(sectors), renderer, sink, opener)

	path, err := p.Run(context.Background(), time.Now())
	if err != nil {
		if errors.Is(err, pipeline.ErrNoArticles) {
			slog.Info("No relevant articles found for today's newsletter")
			return
		}
		slog.Error("Newsletter generation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Newsletter saved", "path", path)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
