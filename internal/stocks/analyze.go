package stocks

import (
	"context"
	"fmt"
	"time"

	"bleau-backend/internal/gemini"
)

const analyzeTimeout = 30 * time.Second

// Analyzer produces an AI stock briefing from a live quote.
type Analyzer struct {
	gemini    *gemini.Client
	textModel string
}

func NewAnalyzer(geminiClient *gemini.Client, textModel string) *Analyzer {
	return &Analyzer{gemini: geminiClient, textModel: textModel}
}

// Analyze asks the model for a structured briefing. The quote figures are
// embedded so the model grounds on live data instead of stale training.
func (a *Analyzer) Analyze(ctx context.Context, quote *Quote) (string, error) {
	actx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	temperature := 0.3
	resp, err := a.gemini.GenerateContent(actx, a.textModel, []gemini.Part{
		{Text: buildAnalysisPrompt(quote)},
	}, &gemini.GenerationConfig{Temperature: &temperature})
	if err != nil {
		return "", fmt.Errorf("analysis call failed: %w", err)
	}

	text := resp.FirstText()
	if text == "" {
		return "Analysis unavailable", nil
	}
	return text, nil
}

func buildAnalysisPrompt(q *Quote) string {
	sign := ""
	if q.Change >= 0 {
		sign = "+"
	}
	pe := "N/A"
	if q.PERatio != nil {
		pe = fmt.Sprintf("%.1f", *q.PERatio)
	}

	return fmt.Sprintf(`You are an elite stock analyst. Provide a concise analysis for %s (%s).

Current data:
- Price: $%.2f
- Day change: %s%.2f (%.2f%%)
- Volume: %d
- Market Cap: $%.1fB
- P/E Ratio: %s
- 52-week range: $%.2f — $%.2f

Provide in this EXACT format:

**VERDICT:** [BULLISH / BEARISH / NEUTRAL] — one sentence summary

**Bull Case:**
• [point 1]
• [point 2]
• [point 3]

**Bear Case:**
• [point 1]
• [point 2]
• [point 3]

**Key Levels:**
• Support: $X, $Y
• Resistance: $X, $Y

**Catalysts to Watch:**
• [upcoming event 1]
• [upcoming event 2]

**Day Trading Notes:**
• [actionable setup or pattern to watch]

Keep it sharp, data-driven, and actionable. No fluff.`,
		q.Symbol, q.Name,
		q.Price,
		sign, q.Change, q.ChangePercent,
		q.Volume,
		float64(q.MarketCap)/1e9,
		pe,
		q.Low52w, q.High52w,
	)
}
