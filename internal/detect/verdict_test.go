package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeVerdict(t *testing.T) {
	tests := []struct {
		raw  string
		want Verdict
	}{
		{"AI_GENERATED", VerdictAIGenerated},
		{"likely_ai", VerdictLikelyAI},
		{"likely ai", VerdictLikelyAI},
		{"  Likely Real  ", VerdictLikelyReal},
		{"REAL", VerdictReal},
		{"uncertain", VerdictUncertain},
		{"definitely fake", VerdictUncertain},
		{"", VerdictUncertain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeVerdict(tt.raw), "raw=%q", tt.raw)
	}
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 50, ClampConfidence(nil))
	assert.Equal(t, 50, ClampConfidence("85"))
	assert.Equal(t, 0, ClampConfidence(float64(0)))
	assert.Equal(t, 0, ClampConfidence(float64(-12)))
	assert.Equal(t, 100, ClampConfidence(float64(250)))
	assert.Equal(t, 85, ClampConfidence(float64(85)))
	assert.Equal(t, 42, ClampConfidence(42.7))
}

func TestRecoverJSON_Direct(t *testing.T) {
	obj, ok := RecoverJSON(`{"verdict":"REAL","confidence":90}`)

	assert.True(t, ok)
	assert.Equal(t, "REAL", obj["verdict"])
}

func TestRecoverJSON_FencedCodeBlock(t *testing.T) {
	text := "Here is my analysis:\n```json\n{\"verdict\":\"LIKELY_AI\",\"confidence\":72}\n```\nLet me know if you need more."

	obj, ok := RecoverJSON(text)

	assert.True(t, ok)
	assert.Equal(t, "LIKELY_AI", obj["verdict"])
	assert.Equal(t, float64(72), obj["confidence"])
}

func TestRecoverJSON_BareFence(t *testing.T) {
	obj, ok := RecoverJSON("```\n{\"verdict\":\"REAL\"}\n```")

	assert.True(t, ok)
	assert.Equal(t, "REAL", obj["verdict"])
}

func TestRecoverJSON_EmbeddedObject(t *testing.T) {
	obj, ok := RecoverJSON(`Sure! The result is {"verdict":"UNCERTAIN","confidence":50} based on my review.`)

	assert.True(t, ok)
	assert.Equal(t, "UNCERTAIN", obj["verdict"])
}

func TestRecoverJSON_Unparseable(t *testing.T) {
	_, ok := RecoverJSON("I could not produce a structured answer.")

	assert.False(t, ok)
}

func TestResultFromJSON_Defaults(t *testing.T) {
	res := resultFromJSON(map[string]any{}, "text", "https://example.com")

	assert.Equal(t, VerdictUncertain, res.Verdict)
	assert.Equal(t, 50, res.Confidence)
	assert.Equal(t, "Analysis complete", res.Summary)
	assert.NotNil(t, res.Indicators)
	assert.Empty(t, res.Indicators)
	assert.Equal(t, "text", res.ContentType)
	assert.Equal(t, "https://example.com", res.SourceURL)
}

func TestResultFromJSON_FullObject(t *testing.T) {
	obj := map[string]any{
		"verdict":     "ai generated",
		"confidence":  float64(0),
		"summary":     "Strong diffusion artifacts",
		"explanation": "Hands have six fingers.",
		"indicators": []any{
			map[string]any{"category": "anatomy", "finding": "extra fingers", "signal": "ai"},
			map[string]any{"category": "lighting", "finding": "consistent shadows"},
			"not an object",
		},
	}

	res := resultFromJSON(obj, "image", "")

	assert.Equal(t, VerdictAIGenerated, res.Verdict)
	assert.Equal(t, 0, res.Confidence)
	assert.Equal(t, "Strong diffusion artifacts", res.Summary)
	assert.Equal(t, "Hands have six fingers.", res.Explanation)
	assert.Len(t, res.Indicators, 2)
	assert.Equal(t, "ai", res.Indicators[0].Signal)
	assert.Equal(t, "neutral", res.Indicators[1].Signal)
}
