package cfg

type Cfg struct {
	// News source configuration
	NewsAPIKey string
	Query      string
	Language   string
	SortBy     string
	PageSize   int
	FeedURL    string

	// Output configuration
	OutputDir    string
	TemplatePath string
	OpenBrowser  bool

	// Application metadata
	Timeout   int
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
