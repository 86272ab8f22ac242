package stocks

import "strings"

// Sector groups the dashboard tickers. Read-only after initialization.
type Sector struct {
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Tickers     []string `json:"tickers"`
}

var Sectors = []Sector{
	{
		Name:        "Data Storage",
		Emoji:       "💾",
		Description: "HDD, SSD, and enterprise storage",
		Tickers:     []string{"MU", "WDC", "STX", "PSTG", "NTAP"},
	},
	{
		Name:        "Semiconductors",
		Emoji:       "🔬",
		Description: "Chip design and manufacturing",
		Tickers:     []string{"NVDA", "AMD", "AVGO", "QCOM", "INTC"},
	},
	{
		Name:        "AI & Cloud",
		Emoji:       "🤖",
		Description: "AI infrastructure and cloud platforms",
		Tickers:     []string{"MSFT", "GOOGL", "AMZN", "META", "PLTR"},
	},
	{
		Name:        "Mega Cap Tech",
		Emoji:       "📱",
		Description: "The biggest names in tech",
		Tickers:     []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"},
	},
}

// FindSector matches a URL slug ("data-storage") to a sector.
func FindSector(slug string) (Sector, bool) {
	for _, s := range Sectors {
		if strings.ReplaceAll(strings.ToLower(s.Name), " ", "-") == slug {
			return s, true
		}
	}
	return Sector{}, false
}

// AllTickers returns the deduplicated union of every sector's tickers.
func AllTickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, s := range Sectors {
		for _, t := range s.Tickers {
			if !seen[t] {
				seen[t] = true
				tickers = append(tickers, t)
			}
		}
	}
	return tickers
}
