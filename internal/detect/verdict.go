package detect

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Verdict is the five-point AI-likelihood classification.
type Verdict string

const (
	VerdictAIGenerated Verdict = "AI_GENERATED"
	VerdictLikelyAI    Verdict = "LIKELY_AI"
	VerdictUncertain   Verdict = "UNCERTAIN"
	VerdictLikelyReal  Verdict = "LIKELY_REAL"
	VerdictReal        Verdict = "REAL"
)

type Indicator struct {
	Category string `json:"category"`
	Finding  string `json:"finding"`
	Signal   string `json:"signal"` // "ai" | "real" | "neutral"
}

// Result is the normalized detection outcome. Error is populated on the
// failure paths so the client always has something to render.
type Result struct {
	Verdict     Verdict     `json:"verdict"`
	Confidence  int         `json:"confidence"`
	Summary     string      `json:"summary"`
	Indicators  []Indicator `json:"indicators"`
	Explanation string      `json:"explanation"`
	ContentType string      `json:"contentType"` // "image" | "text"
	SourceURL   string      `json:"sourceUrl"`
	Error       string      `json:"error,omitempty"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	codeBlockRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// SanitizeVerdict coerces an arbitrary model-supplied verdict string onto
// the enum; anything unrecognized becomes UNCERTAIN.
func SanitizeVerdict(raw string) Verdict {
	upper := Verdict(whitespaceRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "_"))
	switch upper {
	case VerdictAIGenerated, VerdictLikelyAI, VerdictUncertain, VerdictLikelyReal, VerdictReal:
		return upper
	}
	return VerdictUncertain
}

// ClampConfidence maps a decoded JSON value onto [0, 100], defaulting to
// 50 when absent or non-numeric.
func ClampConfidence(raw any) int {
	f, ok := raw.(float64)
	if !ok {
		return 50
	}
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(f)
}

// RecoverJSON parses a model response that should be a single JSON object
// but may arrive wrapped in a fenced code block or surrounded by prose.
// It tries a direct parse, then the first fenced block, then the widest
// {...} span.
func RecoverJSON(text string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, true
	}
	if m := codeBlockRe.FindStringSubmatch(text); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &obj); err == nil {
			return obj, true
		}
	}
	if m := jsonObjectRe.FindString(text); m != "" {
		if err := json.Unmarshal([]byte(m), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

// resultFromJSON sanitizes the recovered object field by field.
func resultFromJSON(obj map[string]any, contentType, sourceURL string) Result {
	res := Result{
		Verdict:     VerdictUncertain,
		Confidence:  ClampConfidence(obj["confidence"]),
		Summary:     "Analysis complete",
		Indicators:  []Indicator{},
		ContentType: contentType,
		SourceURL:   sourceURL,
	}
	if v, ok := obj["verdict"].(string); ok {
		res.Verdict = SanitizeVerdict(v)
	}
	if s, ok := obj["summary"].(string); ok && s != "" {
		res.Summary = s
	}
	if e, ok := obj["explanation"].(string); ok {
		res.Explanation = e
	}
	if raw, ok := obj["indicators"].([]any); ok {
		for _, item := range raw {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			ind := Indicator{Signal: "neutral"}
			if c, ok := m["category"].(string); ok {
				ind.Category = c
			}
			if f, ok := m["finding"].(string); ok {
				ind.Finding = f
			}
			if s, ok := m["signal"].(string); ok && s != "" {
				ind.Signal = s
			}
			res.Indicators = append(res.Indicators, ind)
		}
	}
	return res
}
