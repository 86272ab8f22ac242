package models

// TransformRequest drives the classic single-pet portrait workflow.
type TransformRequest struct {
	ImageURL  string `json:"imageUrl"`
	Style     string `json:"style"`
	Watermark bool   `json:"watermark,omitempty"`
}

type MemorialRequest struct {
	ImageURL  string `json:"imageUrl"`
	Style     string `json:"style"`
	PetName   string `json:"petName,omitempty"`
	Watermark bool   `json:"watermark,omitempty"`
}

type MultiPetRequest struct {
	PetImageURLs []string `json:"petImageUrls"`
	Style        string   `json:"style"`
	Watermark    bool     `json:"watermark,omitempty"`
}

type TogetherRequest struct {
	PersonImageURL string `json:"personImageUrl"`
	PetImageURL    string `json:"petImageUrl"`
	Style          string `json:"style"`
	Watermark      bool   `json:"watermark,omitempty"`
}

type DetectURLRequest struct {
	URL string `json:"url"`
}

type DetectTextRequest struct {
	Text string `json:"text"`
}

type CheckoutRequest struct {
	Plan string `json:"plan"`
}

type StockAnalyzeRequest struct {
	Symbol string `json:"symbol"`
}
