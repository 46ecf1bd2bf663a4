package digest

import (
	"fmt"

	"finletter/app/source"
)

// Sector is one entry of the ordered classification table.
type Sector struct {
	Name     string
	Keywords []string
}

// SectorTable is an ordered list of sectors. Classification tries
// sectors in table order and keywords in list order, so earlier
// entries take precedence.
type SectorTable []Sector

func (t SectorTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("sector table is empty")
	}
	seen := make(map[string]bool, len(t))
	for i, sector := range t {
		if sector.Name == "" {
			return fmt.Errorf("sector at index %d has no name", i)
		}
		if seen[sector.Name] {
			return fmt.Errorf("duplicate sector name: %s", sector.Name)
		}
		seen[sector.Name] = true
		if len(sector.Keywords) == 0 {
			return fmt.Errorf("sector %s has no keywords", sector.Name)
		}
		for _, keyword := range sector.Keywords {
			if keyword == "" {
				return fmt.Errorf("sector %s has an empty keyword", sector.Name)
			}
		}
	}
	return nil
}

// ClassifiedArticle is an article annotated with its assigned sector
// and generated summary. Not mutated after creation.
type ClassifiedArticle struct {
	source.Article
	Sector  string
	Summary string
}

// SectorGroup holds the classified articles of one sector.
type SectorGroup struct {
	Name     string
	Articles []ClassifiedArticle
}

// Newsletter is the grouped result handed to the renderer. Groups
// follow sector table order; sectors without articles are omitted.
type Newsletter struct {
	Date   string
	Groups []SectorGroup
}
