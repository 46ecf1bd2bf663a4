package digest

import (
	"strings"

	"finletter/app/source"
)

// Classifier assigns articles to sectors by literal keyword matching
// over the lowercased title and description.
type Classifier struct {
	table SectorTable
}

func NewClassifier(table SectorTable) *Classifier {
	return &Classifier{table: table}
}

// Run returns the name of the first sector whose keyword occurs in the
// article text, trying sectors in table order and keywords in list
// order. The second return value is false when no keyword matches.
func (c *Classifier) Run(article source.Article) (string, bool) {
	haystack := strings.ToLower(article.Title + " " + article.Description)

	for _, sector := range c.table {
		for _, keyword := range sector.Keywords {
			if strings.Contains(haystack, keyword) {
				return sector.Name, true
			}
		}
	}

	return "", false
}
