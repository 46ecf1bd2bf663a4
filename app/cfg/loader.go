package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// DefaultQuery is the NewsAPI search query used when none is
// configured. Negative keywords keep non-financial stories out of the
// raw article pull.
const DefaultQuery = "financial markets OR stock market OR investment OR economy OR corporate finance " +
	"OR tech finance OR energy finance OR pharma finance OR real estate finance OR retail finance " +
	"-casino -gambling -sports -entertainment -celebrity"

type rawCfg struct {
	// News source configuration
	NewsAPIKey string `long:"newsapi-key" env:"NEWSAPI_KEY" description:"NewsAPI.org API key (required unless --feed-url is set)"`
	Query      string `long:"query" env:"QUERY" description:"NewsAPI search query (defaults to the built-in financial query)"`
	Language   string `long:"language" env:"LANGUAGE" default:"en" description:"Article language code"`
	SortBy     string `long:"sort-by" env:"SORT_BY" default:"publishedAt" description:"NewsAPI sort order"`
	PageSize   int    `long:"page-size" env:"PAGE_SIZE" default:"50" description:"Number of articles to pull per run"`
	FeedURL    string `long:"feed-url" env:"FEED_URL" description:"RSS/Atom feed URL to pull articles from instead of NewsAPI"`

	// Output configuration
	OutputDir    string `long:"output-dir" env:"OUTPUT_DIR" default:"." description:"Directory the newsletter HTML file is written to"`
	TemplatePath string `long:"template" env:"TEMPLATE_PATH" default:"newsletter_template.html" description:"Path to the newsletter HTML template"`
	NoBrowser    bool   `long:"no-browser" env:"NO_BROWSER" description:"Do not open the generated newsletter in the default browser"`

	// Application metadata
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP timeout in seconds"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Finletter/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for the newsletter date (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	// A missing .env file is fine; environment variables win either way
	_ = godotenv.Load()

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		NewsAPIKey:   raw.NewsAPIKey,
		Query:        cmp.Or(raw.Query, DefaultQuery),
		Language:     raw.Language,
		SortBy:       raw.SortBy,
		PageSize:     raw.PageSize,
		FeedURL:      raw.FeedURL,
		OutputDir:    raw.OutputDir,
		TemplatePath: raw.TemplatePath,
		OpenBrowser:  !raw.NoBrowser,
		Timeout:      raw.Timeout,
		UserAgent:    raw.UserAgent,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.NewsAPIKey == "" && cfg.FeedURL == "" {
		return fmt.Errorf("NEWSAPI_KEY is required (or set --feed-url to pull from an RSS feed)")
	}
	if cfg.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}
	if _, err := language.Parse(cfg.Language); err != nil {
		return fmt.Errorf("invalid language code '%s': %w", cfg.Language, err)
	}
	return nil
}

// GetTimeout returns the HTTP timeout as time.Duration
func (c *Cfg) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(c.Timeout) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
