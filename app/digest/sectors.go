package digest

// DefaultSectors returns the built-in sector table. Keywords are
// lowercase; classification lowercases the article text before
// matching. Table order matters: earlier sectors win ties.
func DefaultSectors() SectorTable {
	return SectorTable{
		{
			Name: "Technology",
			Keywords: []string{"tech", "software", "hardware", "startup", "semiconductor",
				"cloud computing", "fintech", "blockchain", "cybersecurity", "innovation", "chip"},
		},
		{
			Name: "Pharmaceuticals",
			Keywords: []string{"pharma", "drug", "biotech", "clinical trial", "vaccine", "healthcare",
				"medicine", "biotechnology"},
		},
		{
			Name: "Energy",
			Keywords: []string{"oil", "gas", "renewable", "solar", "wind", "energy market", "crude",
				"drilling", "utilities", "power grid"},
		},
		{
			Name: "Automotive",
			Keywords: []string{"auto", "electric vehicle", "car", "tesla", "manufacturing", "automaker",
				"autonomous driving", "mobility"},
		},
		{
			Name: "Finance",
			Keywords: []string{"bank", "investment", "fund", "stock", "bond", "forex", "economy",
				"market", "currency", "financial", "securities", "trading", "merger", "acquisition",
				"earnings", "interest rate", "inflation", "recession"},
		},
		{
			Name: "Real Estate",
			Keywords: []string{"real estate", "property", "housing", "mortgage", "construction",
				"commercial property", "residential market"},
		},
		{
			Name: "Retail",
			Keywords: []string{"retail", "e-commerce", "consumer goods", "fashion", "supermarket",
				"shopping", "online sales"},
		},
	}
}
