package portrait

import (
	"fmt"

	"bleau-backend/internal/gemini"
)

// Reconcile maps a synthesis parts list onto a normalized result. It takes
// the first inline-media part and the first text part independently; the
// absence of an image is a degraded result, not an error. Pure function,
// total over any parts list.
func Reconcile(parts []gemini.Part, fallback string) Result {
	var inline *gemini.InlineData
	var text string

	for _, p := range parts {
		if inline == nil && p.InlineData != nil && p.InlineData.Data != "" {
			inline = p.InlineData
		}
		if text == "" && p.Text != "" {
			text = p.Text
		}
	}

	if inline != nil {
		mimeType := inline.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}
		description := text
		if description == "" {
			description = fallback
		}
		return Result{
			TransformedURL: fmt.Sprintf("data:%s;base64,%s", mimeType, inline.Data),
			Description:    description,
		}
	}

	if text != "" {
		return Result{Description: text}
	}

	return Result{Description: fallback}
}
