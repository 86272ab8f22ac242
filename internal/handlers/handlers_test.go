package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bleau-backend/internal/checkout"
	"bleau-backend/internal/detect"
	"bleau-backend/internal/gemini"
	"bleau-backend/internal/handlers"
	"bleau-backend/internal/portrait"
	"bleau-backend/internal/stocks"
	"bleau-backend/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func portraitRouter() *gin.Engine {
	svc := portrait.NewService(gemini.NewClient("http://unused", "key"), "storage.example.com", "image-model", "text-model")
	h := handlers.NewPortraitHandler(svc)

	router := gin.New()
	router.POST("/transform", h.Transform)
	router.POST("/memorial", h.Memorial)
	router.POST("/multi-pet", h.MultiPet)
	router.POST("/together", h.Together)
	return router
}

func TestPortraitHandler_Transform_InvalidBody(t *testing.T) {
	router := portraitRouter()

	req, _ := http.NewRequest("POST", "/transform", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestPortraitHandler_Transform_InvalidStyle(t *testing.T) {
	w := postJSON(portraitRouter(), "/transform", map[string]any{
		"imageUrl": "https://storage.example.com/a.jpg",
		"style":    "vaporwave",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid style selected")
}

func TestPortraitHandler_Transform_RejectsForeignHost(t *testing.T) {
	w := postJSON(portraitRouter(), "/transform", map[string]any{
		"imageUrl": "https://evil.com/a.jpg",
		"style":    "pixar",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid image source")
}

func TestPortraitHandler_Memorial_RejectsHTTP(t *testing.T) {
	w := postJSON(portraitRouter(), "/memorial", map[string]any{
		"imageUrl": "http://storage.example.com/a.jpg",
		"style":    "rainbow-bridge",
		"petName":  "Biscuit",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "HTTPS")
}

func TestPortraitHandler_MultiPet_CountValidation(t *testing.T) {
	router := portraitRouter()

	w := postJSON(router, "/multi-pet", map[string]any{
		"petImageUrls": []string{"https://storage.example.com/a.jpg"},
		"style":        "family-portrait",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "2-5 pet photos")

	six := make([]string, 6)
	for i := range six {
		six[i] = fmt.Sprintf("https://storage.example.com/%d.jpg", i)
	}
	w = postJSON(router, "/multi-pet", map[string]any{
		"petImageUrls": six,
		"style":        "family-portrait",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortraitHandler_Together_LabelsValidationError(t *testing.T) {
	w := postJSON(portraitRouter(), "/together", map[string]any{
		"personImageUrl": "https://evil.com/person.jpg",
		"petImageUrl":    "https://storage.example.com/pet.jpg",
		"style":          "studio-portrait",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Person photo")
}

func detectRouter(geminiURL string) *gin.Engine {
	svc := detect.NewService(gemini.NewClient(geminiURL, "key"), "text-model")
	h := handlers.NewDetectHandler(svc)

	router := gin.New()
	router.POST("/detect", h.DetectURL)
	router.POST("/detect/text", h.DetectText)
	return router
}

func TestDetectHandler_MissingURL(t *testing.T) {
	w := postJSON(detectRouter("http://unused"), "/detect", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result detect.Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, detect.VerdictUncertain, result.Verdict)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, "Please provide a valid URL", result.Error)
}

func TestDetectHandler_ShortText(t *testing.T) {
	w := postJSON(detectRouter("http://unused"), "/detect/text", map[string]any{"text": "hi"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 50 characters")
}

func TestDetectHandler_TextSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gemini.GenerateResponse{Candidates: []gemini.Candidate{{
			Content: gemini.Content{Parts: []gemini.Part{{Text: `{"verdict":"REAL","confidence":77}`}}},
		}}})
	}))
	defer srv.Close()

	text := strings.Repeat("a perfectly ordinary human sentence. ", 3)
	w := postJSON(detectRouter(srv.URL), "/detect/text", map[string]any{"text": text})

	assert.Equal(t, http.StatusOK, w.Code)

	var result detect.Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, detect.VerdictReal, result.Verdict)
	assert.Equal(t, 77, result.Confidence)
}

func stocksRouter(quotesURL, geminiURL string) *gin.Engine {
	h := handlers.NewStocksHandler(
		stocks.NewClient(quotesURL),
		stocks.NewAnalyzer(gemini.NewClient(geminiURL, "key"), "text-model"),
	)

	router := gin.New()
	router.GET("/stocks", h.GetQuotes)
	router.POST("/stocks/analyze", h.Analyze)
	return router
}

func stubQuoteServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbols")
		if symbol == "MISSING" {
			fmt.Fprint(w, `{"quoteResponse":{"result":[]}}`)
			return
		}
		fmt.Fprintf(w, `{"quoteResponse":{"result":[{"symbol":%q,"shortName":"Stub","regularMarketPrice":10.0}]}}`, symbol)
	}))
}

func TestStocksHandler_GetQuotes_Symbols(t *testing.T) {
	quotes := stubQuoteServer()
	defer quotes.Close()

	router := stocksRouter(quotes.URL, "http://unused")

	req, _ := http.NewRequest("GET", "/stocks?symbols=nvda,%20amd", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "NVDA")
	assert.Contains(t, w.Body.String(), "AMD")
}

func TestStocksHandler_GetQuotes_UnknownSector(t *testing.T) {
	router := stocksRouter("http://unused", "http://unused")

	req, _ := http.NewRequest("GET", "/stocks?sector=crypto", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quotes":[]}`, w.Body.String())
}

func TestStocksHandler_Analyze_MissingSymbol(t *testing.T) {
	router := stocksRouter("http://unused", "http://unused")

	w := postJSON(router, "/stocks/analyze", map[string]any{"symbol": "  "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "symbol required")
}

func TestStocksHandler_Analyze_UnknownSymbol(t *testing.T) {
	quotes := stubQuoteServer()
	defer quotes.Close()

	router := stocksRouter(quotes.URL, "http://unused")

	w := postJSON(router, "/stocks/analyze", map[string]any{"symbol": "missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "could not find data for MISSING")
}

func TestStocksHandler_Analyze_Success(t *testing.T) {
	quotes := stubQuoteServer()
	defer quotes.Close()

	analyzer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gemini.GenerateResponse{Candidates: []gemini.Candidate{{
			Content: gemini.Content{Parts: []gemini.Part{{Text: "**VERDICT:** NEUTRAL"}}},
		}}})
	}))
	defer analyzer.Close()

	router := stocksRouter(quotes.URL, analyzer.URL)

	w := postJSON(router, "/stocks/analyze", map[string]any{"symbol": "nvda"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":"NVDA"`)
	assert.Contains(t, w.Body.String(), "NEUTRAL")
	assert.Contains(t, w.Body.String(), `"timestamp"`)
}

func TestCheckoutHandler_NotConfigured(t *testing.T) {
	h := handlers.NewCheckoutHandler(checkout.NewClient("", "", "", "https://bleau.ai"))
	router := gin.New()
	router.POST("/checkout", h.CreateSession)

	w := postJSON(router, "/checkout", map[string]any{"plan": "pro"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Payments coming soon")
}

func uploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	client, err := storage.NewClient("https://abc.supabase.co", "service-key", "portraits")
	assert.NoError(t, err)

	h := handlers.NewUploadHandler(client)
	router := gin.New()
	router.POST("/upload", h.Upload)
	return router
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadHandler_NoFile(t *testing.T) {
	router := uploadRouter(t)

	req, _ := http.NewRequest("POST", "/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file provided")
}

func TestUploadHandler_RejectsInvalidType(t *testing.T) {
	router := uploadRouter(t)

	body, contentType := multipartUpload(t, "malware.exe", "application/octet-stream", []byte("MZ"))
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid file type")
}

func TestUploadHandler_RejectsOversizedFile(t *testing.T) {
	router := uploadRouter(t)

	body, contentType := multipartUpload(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte{0xFF}, storage.MaxUploadBytes+1))
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file too large")
}
