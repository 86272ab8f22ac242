package detect

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bleau-backend/internal/gemini"
)

const (
	maxTextLength  = 8000
	minTextLength  = 50
	maxImageBytes  = 20 * 1024 * 1024
	fetchTimeout   = 15 * time.Second
	analyzeTimeout = 45 * time.Second

	userAgent = "Mozilla/5.0 (compatible; Bleau/1.0; +https://bleau.ai)"
)

var imageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/avif",
}

var imageExtensions = []string{"jpg", "jpeg", "png", "webp", "gif", "avif"}

// Service classifies a URL or pasted text as AI-generated or human-made
// through a single rubric-driven inference call. The outcome is always a
// fully populated Result plus the HTTP status it should ship with.
type Service struct {
	gemini     *gemini.Client
	httpClient *http.Client
	textModel  string
}

func NewService(geminiClient *gemini.Client, textModel string) *Service {
	return &Service{
		gemini:     geminiClient,
		httpClient: &http.Client{},
		textModel:  textModel,
	}
}

// DetectURL fetches the target, branches on content type, and runs the
// matching rubric.
func (s *Service) DetectURL(ctx context.Context, rawURL string) (Result, int) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return failure("Invalid URL", "Please provide a valid HTTP or HTTPS URL", "text", rawURL), http.StatusBadRequest
	}

	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, "GET", rawURL, nil)
	if err != nil {
		return failure("Invalid URL", "Please provide a valid HTTP or HTTPS URL", "text", rawURL), http.StatusBadRequest
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return failure("Could not fetch URL", "Failed to fetch URL. The site may be blocking automated access.", "text", rawURL), http.StatusUnprocessableEntity
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failure("Could not fetch URL",
			fmt.Sprintf("Failed to fetch URL (%d). The site may be blocking automated access.", resp.StatusCode),
			"text", rawURL), http.StatusUnprocessableEntity
	}

	contentType := resp.Header.Get("Content-Type")

	if isImageURL(rawURL, contentType) {
		return s.detectImage(ctx, resp.Body, contentType, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("Could not fetch URL", "Failed to read page content.", "text", rawURL), http.StatusUnprocessableEntity
	}

	extracted := ExtractText(string(body))
	if len(extracted) < minTextLength {
		return failure("Not enough text content to analyze",
			"The page doesn't contain enough readable text for analysis. Try pasting a direct link to an article or text content.",
			"text", rawURL), http.StatusUnprocessableEntity
	}

	return s.analyzeText(ctx, extracted, rawURL)
}

// DetectText skips fetching and applies the text rubric directly.
func (s *Service) DetectText(ctx context.Context, text string) (Result, int) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minTextLength {
		return failure("Not enough text",
			"Please provide at least 50 characters of text to analyze.",
			"text", ""), http.StatusBadRequest
	}
	return s.analyzeText(ctx, trimmed, "")
}

func (s *Service) detectImage(ctx context.Context, body io.Reader, contentType, sourceURL string) (Result, int) {
	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes+1))
	if err != nil {
		return failure("Could not fetch URL", "Failed to read image content.", "image", sourceURL), http.StatusUnprocessableEntity
	}
	if len(data) > maxImageBytes {
		return failure("Image too large", "Image exceeds 20MB limit", "image", sourceURL), http.StatusBadRequest
	}

	mimeType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []gemini.Part{
		{InlineData: &gemini.InlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
		{Text: imageAnalysisPrompt},
	}

	return s.classify(ctx, parts, "image", sourceURL)
}

func (s *Service) analyzeText(ctx context.Context, text, sourceURL string) (Result, int) {
	if len(text) > maxTextLength {
		text = text[:maxTextLength]
	}

	parts := []gemini.Part{
		{Text: textAnalysisPrompt + "\n\n---\n\nTEXT TO ANALYZE:\n\n" + text},
	}

	return s.classify(ctx, parts, "text", sourceURL)
}

// classify runs the single inference call and recovers a structured
// verdict from its free-text response.
func (s *Service) classify(ctx context.Context, parts []gemini.Part, contentType, sourceURL string) (Result, int) {
	actx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	// Low temperature for analytical accuracy.
	temperature := 0.1
	resp, err := s.gemini.GenerateContent(actx, s.textModel, parts, &gemini.GenerationConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return failure("Analysis failed", "Failed to analyze content. Please try again.", contentType, sourceURL), http.StatusInternalServerError
	}

	raw := resp.FirstText()
	obj, ok := RecoverJSON(raw)
	if !ok {
		// Degraded result: no verdict, raw response preserved.
		res := failure("Analysis could not be completed", "", contentType, sourceURL)
		res.Explanation = raw
		if res.Explanation == "" {
			res.Explanation = "Failed to parse analysis results"
		}
		return res, http.StatusOK
	}

	return resultFromJSON(obj, contentType, sourceURL), http.StatusOK
}

func isImageURL(rawURL, contentType string) bool {
	if contentType != "" {
		for _, t := range imageMimeTypes {
			if strings.HasPrefix(contentType, t) {
				return true
			}
		}
		return false
	}
	path := strings.Split(rawURL, "?")[0]
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(path[idx+1:])
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Failure builds a fully populated no-verdict result for an error path.
func Failure(summary, errMsg, contentType, sourceURL string) Result {
	return failure(summary, errMsg, contentType, sourceURL)
}

func failure(summary, errMsg, contentType, sourceURL string) Result {
	return Result{
		Verdict:     VerdictUncertain,
		Confidence:  0,
		Summary:     summary,
		Indicators:  []Indicator{},
		ContentType: contentType,
		SourceURL:   sourceURL,
		Error:       errMsg,
	}
}
