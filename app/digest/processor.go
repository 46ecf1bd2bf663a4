package digest

import (
	"log/slog"

	"finletter/app/source"
)

// Processor runs fetched articles through classification and
// summarization and groups the survivors by sector. Articles matching
// no sector are dropped silently.
type Processor struct {
	table      SectorTable
	classifier *Classifier
	summarizer *Summarizer
}

func NewProcessor(table SectorTable) *Processor {
	return &Processor{
		table:      table,
		classifier: NewClassifier(table),
		summarizer: NewSummarizer(),
	}
}

func (p *Processor) Run(date string, articles []source.Article) Newsletter {
	grouped := make(map[string][]ClassifiedArticle, len(p.table))
	classified := 0

	for _, article := range articles {
		sectorName, ok := p.classifier.Run(article)
		if !ok {
			slog.Debug("Article matched no sector, dropping", "title", article.Title)
			continue
		}

		item := ClassifiedArticle{
			Article: article,
			Sector:  sectorName,
			Summary: p.summarizer.Run(article.Description),
		}
		grouped[sectorName] = append(grouped[sectorName], item)
		classified++

		slog.Debug("Classified article",
			"title", item.Title,
			"sector", item.Sector,
			"summary", item.Summary)
	}

	newsletter := Newsletter{Date: date}
	for _, sector := range p.table {
		if items := grouped[sector.Name]; len(items) > 0 {
			newsletter.Groups = append(newsletter.Groups, SectorGroup{
				Name:     sector.Name,
				Articles: items,
			})
		}
	}

	slog.Info("Processed articles",
		"pulled", len(articles),
		"classified", classified,
		"dropped", len(articles)-classified,
		"sectors", len(newsletter.Groups))

	return newsletter
}
