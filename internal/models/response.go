package models

import "bleau-backend/internal/stocks"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

// TransformResponse is the normalized portrait result: a data URI when an
// image was generated, always at least a description.
type TransformResponse struct {
	TransformedURL string `json:"transformedUrl,omitempty"`
	Description    string `json:"description,omitempty"`
}

type QuotesResponse struct {
	Quotes []stocks.Quote `json:"quotes"`
}

type StockAnalysisResponse struct {
	Symbol    string       `json:"symbol"`
	Quote     stocks.Quote `json:"quote"`
	Analysis  string       `json:"analysis"`
	Timestamp string       `json:"timestamp"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
