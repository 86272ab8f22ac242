package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bleau-backend/internal/imgutil"
	"bleau-backend/internal/models"
	"bleau-backend/internal/portrait"
	"bleau-backend/internal/styles"
)

const multiPetSynthesisTimeout = 90 * time.Second

// PortraitHandler hosts the four portrait workflows. Each is a thin
// parameterization of the generic analyze-then-synthesize orchestration.
type PortraitHandler struct {
	service *portrait.Service
}

func NewPortraitHandler(service *portrait.Service) *PortraitHandler {
	return &PortraitHandler{service: service}
}

// Transform renders a single pet in a classic style.
func (h *PortraitHandler) Transform(c *gin.Context) {
	var req models.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	style, ok := styles.Classic.Find(req.Style)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid style selected"})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), portrait.Request{
		Subjects: []portrait.Subject{{
			ImageURL:       req.ImageURL,
			AnalysisPrompt: styles.PetAnalysisPrompt,
			Fallback:       styles.ClassicFallbackDescription,
		}},
		SynthesisPrompt: func(descs []string) string {
			return singleSubjectPrompt(style.Prompt, "", descs[0])
		},
		DegradedText: func(descs []string) string { return descs[0] },
	})
	if err != nil {
		respondPortraitError(c, err)
		return
	}

	respondPortrait(c, result, req.Watermark)
}

// Memorial renders a tribute portrait, optionally weaving in the pet's
// name.
func (h *PortraitHandler) Memorial(c *gin.Context) {
	var req models.MemorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	style, ok := styles.Memorial.Find(req.Style)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid style selected"})
		return
	}

	nameClause := ""
	if req.PetName != "" {
		nameClause = fmt.Sprintf("The pet's name is %s. ", req.PetName)
	}

	result, err := h.service.Generate(c.Request.Context(), portrait.Request{
		Subjects: []portrait.Subject{{
			ImageURL:       req.ImageURL,
			AnalysisPrompt: styles.MemorialAnalysisPrompt,
			Fallback:       styles.ClassicFallbackDescription,
		}},
		SynthesisPrompt: func(descs []string) string {
			return fmt.Sprintf(`%s

%sIDENTITY REFERENCE — this is the exact pet to depict:
%s

CRITICAL INSTRUCTIONS:
- This is a MEMORIAL portrait for someone who has lost their beloved pet
- Every physical detail must match the original photo exactly
- The pet must look healthy, happy, and at peace
- The mood should be comforting, beautiful, and deeply respectful
- Identity accuracy is the absolute #1 priority — this pet was someone's family member
- Create something worthy of being printed, framed, and treasured forever`,
				style.Prompt, nameClause, descs[0])
		},
		DegradedText: func(descs []string) string { return descs[0] },
	})
	if err != nil {
		respondPortraitError(c, err)
		return
	}

	respondPortrait(c, result, req.Watermark)
}

// MultiPet composites 2-5 pets into one scene after a single grouped
// analysis call.
func (h *PortraitHandler) MultiPet(c *gin.Context) {
	var req models.MultiPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(req.PetImageURLs) < 2 || len(req.PetImageURLs) > 5 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "please upload 2-5 pet photos"})
		return
	}

	style, ok := styles.MultiPet.Find(req.Style)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid style selected"})
		return
	}

	subjects := make([]portrait.Subject, len(req.PetImageURLs))
	for i, url := range req.PetImageURLs {
		subjects[i] = portrait.Subject{
			ImageURL:       url,
			AnalysisPrompt: styles.MultiPetAnalysisPrompt,
			Fallback:       styles.MultiPetFallbackDescription,
		}
	}

	result, err := h.service.Generate(c.Request.Context(), portrait.Request{
		Subjects:      subjects,
		GroupAnalysis: true,
		SynthesisPrompt: func(descs []string) string {
			return fmt.Sprintf(`%s

PET IDENTITIES (each must be accurately depicted):
%s

CRITICAL INSTRUCTIONS:
- Every pet must appear in the final image
- Each pet's breed, coloring, markings, and features must match their reference photo exactly
- Pets should be interacting naturally with each other
- The composition should feel balanced with all pets visible
- Identity accuracy for ALL pets is the #1 priority`,
				style.Prompt, descs[0])
		},
		DegradedText:     func(descs []string) string { return descs[0] },
		SynthesisTimeout: multiPetSynthesisTimeout,
	})
	if err != nil {
		respondPortraitError(c, err)
		return
	}

	respondPortrait(c, result, req.Watermark)
}

// Together renders the owner and their pet in one scene. Person and pet
// are analyzed by parallel calls with their own rubrics.
func (h *PortraitHandler) Together(c *gin.Context) {
	var req models.TogetherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	style, ok := styles.Together.Find(req.Style)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid style selected"})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), portrait.Request{
		Subjects: []portrait.Subject{
			{
				ImageURL:       req.PersonImageURL,
				AnalysisPrompt: styles.PersonAnalysisPrompt,
				Fallback:       styles.PersonFallbackDescription,
				Label:          "Person photo",
			},
			{
				ImageURL:       req.PetImageURL,
				AnalysisPrompt: styles.PetAnalysisPrompt,
				Fallback:       styles.TogetherPetFallbackDescription,
				Label:          "Pet photo",
			},
		},
		SynthesisPrompt: func(descs []string) string {
			return fmt.Sprintf(`%s

PERSON IDENTITY (must match exactly):
%s

PET IDENTITY (must match exactly):
%s

CRITICAL INSTRUCTIONS:
- Both the person and pet must be clearly recognizable as the specific individuals from the reference photos
- The person's face, hair, build, and features must be accurate
- The pet's breed, coloring, markings, and features must be accurate
- They should be interacting naturally — genuine warmth and connection between them
- Identity accuracy for BOTH subjects is the #1 priority`,
				style.Prompt, descs[0], descs[1])
		},
		DegradedText: func(descs []string) string {
			return fmt.Sprintf("**Person:** %s\n\n**Pet:** %s", descs[0], descs[1])
		},
	})
	if err != nil {
		respondPortraitError(c, err)
		return
	}

	respondPortrait(c, result, req.Watermark)
}

func singleSubjectPrompt(stylePrompt, nameClause, description string) string {
	return fmt.Sprintf(`%s

%sIDENTITY REFERENCE — this is the exact pet to depict:
%s

CRITICAL INSTRUCTIONS:
- The pet's breed, coloring, markings, and features must match the reference photo exactly
- Identity accuracy is the #1 priority — stylistic license never overrides the pet's real features
- Create something worthy of being printed and framed`,
		stylePrompt, nameClause, description)
}

func respondPortrait(c *gin.Context, result *portrait.Result, watermark bool) {
	transformedURL := result.TransformedURL
	if watermark && transformedURL != "" {
		transformedURL = imgutil.WatermarkDataURI(transformedURL, imgutil.WatermarkLabel)
	}
	c.JSON(http.StatusOK, models.TransformResponse{
		TransformedURL: transformedURL,
		Description:    result.Description,
	})
}

func respondPortraitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portrait.ErrInvalidMedia):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, portrait.ErrFetchFailed):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch uploaded image",
			Message: err.Error(),
		})
	case errors.Is(err, portrait.ErrAnalyzeFailed):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to analyze photo, please try again",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "portrait generation failed",
			Message: err.Error(),
		})
	}
}
