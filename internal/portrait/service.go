package portrait

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"bleau-backend/internal/gemini"
)

// Sentinel errors let handlers map orchestration failures onto distinct
// user-facing messages and status codes.
var (
	ErrInvalidMedia  = errors.New("invalid media reference")
	ErrFetchFailed   = errors.New("failed to fetch image")
	ErrAnalyzeFailed = errors.New("failed to analyze image")
)

const (
	fetchTimeout        = 15 * time.Second
	analyzeTimeout      = 30 * time.Second
	defaultSynthTimeout = 60 * time.Second

	unavailableSuffix = "\n\n*Image generation temporarily unavailable. Please try again in a moment.*"
)

// Subject is one analysis unit of a portrait request.
type Subject struct {
	ImageURL       string
	AnalysisPrompt string
	Fallback       string // description used when analysis returns no text
	Label          string // folded into validation errors ("Person photo")
}

// Request parameterizes the generic analyze-then-synthesize operation.
// Every portrait workflow is a thin instantiation of this shape.
type Request struct {
	Subjects []Subject

	// GroupAnalysis runs one analysis call carrying every subject image,
	// using the first subject's prompt and fallback. Otherwise each subject
	// is analyzed by its own concurrent call.
	GroupAnalysis bool

	// SynthesisPrompt assembles the generation prompt from the subject
	// descriptions (style template, identity blocks, instructions).
	SynthesisPrompt func(descriptions []string) string

	// DegradedText assembles the description returned when synthesis fails
	// or produces neither image nor text.
	DegradedText func(descriptions []string) string

	// SynthesisTimeout defaults to 60s; multi-subject workflows stretch it.
	SynthesisTimeout time.Duration
}

// Result is the normalized outcome of a portrait workflow.
type Result struct {
	TransformedURL string `json:"transformedUrl,omitempty"`
	Description    string `json:"description,omitempty"`
}

type subjectImage struct {
	data     string // base64
	mimeType string
}

// Service runs the two-step analyze-then-synthesize orchestration. The
// split exists because the image model cannot restyle an arbitrary photo
// end to end; grounding on a textual identity description plus the
// original bytes biases generation toward fidelity.
type Service struct {
	gemini     *gemini.Client
	httpClient *http.Client
	mediaHost  string
	imageModel string
	textModel  string
}

func NewService(geminiClient *gemini.Client, mediaHost, imageModel, textModel string) *Service {
	return &Service{
		gemini:     geminiClient,
		httpClient: &http.Client{},
		mediaHost:  mediaHost,
		imageModel: imageModel,
		textModel:  textModel,
	}
}

// ValidateMediaURL enforces that a media reference is HTTPS and points at
// the configured storage origin before any server-side fetch.
func (s *Service) ValidateMediaURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: no URL provided", ErrInvalidMedia)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid URL format", ErrInvalidMedia)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: URL must use HTTPS", ErrInvalidMedia)
	}
	if u.Host != s.mediaHost && !strings.HasSuffix(u.Host, "."+s.mediaHost) {
		return fmt.Errorf("%w: invalid image source", ErrInvalidMedia)
	}
	return nil
}

// Generate runs the full workflow: validate, fetch, analyze, synthesize,
// reconcile. Analysis failures abort; synthesis failures degrade to a
// text-only result.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if len(req.Subjects) == 0 {
		return nil, fmt.Errorf("%w: no subjects provided", ErrInvalidMedia)
	}

	for _, sub := range req.Subjects {
		if err := s.ValidateMediaURL(sub.ImageURL); err != nil {
			if sub.Label != "" {
				return nil, fmt.Errorf("%s: %w", sub.Label, err)
			}
			return nil, err
		}
	}

	images, err := s.fetchAll(ctx, req.Subjects)
	if err != nil {
		return nil, err
	}

	descriptions, err := s.analyze(ctx, req, images)
	if err != nil {
		return nil, err
	}

	synthTimeout := req.SynthesisTimeout
	if synthTimeout == 0 {
		synthTimeout = defaultSynthTimeout
	}

	parts := make([]gemini.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, gemini.Part{InlineData: &gemini.InlineData{MimeType: img.mimeType, Data: img.data}})
	}
	parts = append(parts, gemini.Part{Text: req.SynthesisPrompt(descriptions)})

	synthCtx, cancel := context.WithTimeout(ctx, synthTimeout)
	defer cancel()

	resp, err := s.gemini.GenerateContent(synthCtx, s.imageModel, parts, &gemini.GenerationConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		// Analysis succeeded, so still return something useful.
		return &Result{Description: req.DegradedText(descriptions) + unavailableSuffix}, nil
	}

	result := Reconcile(resp.Parts(), req.DegradedText(descriptions))
	return &result, nil
}

// fetchAll dereferences every subject image concurrently. Any single
// failure fails the join.
func (s *Service) fetchAll(ctx context.Context, subjects []Subject) ([]subjectImage, error) {
	images := make([]subjectImage, len(subjects))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subjects {
		i, sub := i, sub
		g.Go(func() error {
			img, err := s.fetchImage(gctx, sub.ImageURL)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Service) fetchImage(ctx context.Context, imageURL string) (subjectImage, error) {
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, "GET", imageURL, nil)
	if err != nil {
		return subjectImage{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return subjectImage{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return subjectImage{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return subjectImage{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return subjectImage{
		data:     base64.StdEncoding.EncodeToString(data),
		mimeType: mimeType,
	}, nil
}

// analyze produces one identity description per analysis group: a single
// grouped call for GroupAnalysis requests, otherwise one concurrent call
// per subject. Empty analysis text falls back per subject; transport
// failure aborts.
func (s *Service) analyze(ctx context.Context, req Request, images []subjectImage) ([]string, error) {
	if req.GroupAnalysis {
		parts := make([]gemini.Part, 0, len(images)+1)
		for _, img := range images {
			parts = append(parts, gemini.Part{InlineData: &gemini.InlineData{MimeType: img.mimeType, Data: img.data}})
		}
		parts = append(parts, gemini.Part{Text: req.Subjects[0].AnalysisPrompt})

		text, err := s.analysisCall(ctx, parts)
		if err != nil {
			return nil, err
		}
		if text == "" {
			text = req.Subjects[0].Fallback
		}
		return []string{text}, nil
	}

	descriptions := make([]string, len(req.Subjects))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range req.Subjects {
		i, sub := i, sub
		g.Go(func() error {
			parts := []gemini.Part{
				{InlineData: &gemini.InlineData{MimeType: images[i].mimeType, Data: images[i].data}},
				{Text: sub.AnalysisPrompt},
			}
			text, err := s.analysisCall(gctx, parts)
			if err != nil {
				return err
			}
			if text == "" {
				text = sub.Fallback
			}
			descriptions[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return descriptions, nil
}

func (s *Service) analysisCall(ctx context.Context, parts []gemini.Part) (string, error) {
	actx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	resp, err := s.gemini.GenerateContent(actx, s.textModel, parts, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAnalyzeFailed, err)
	}
	return resp.FirstText(), nil
}
