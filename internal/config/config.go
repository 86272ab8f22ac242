package config

import (
	"fmt"
	"net/url"
	"os"
)

type Config struct {
	// Gemini API
	GeminiAPIKey     string
	GeminiAPIBaseURL string
	GeminiImageModel string
	GeminiTextModel  string

	// Supabase Storage (media ingestion)
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// Host allowed for server-side media fetches. Defaults to the Supabase
	// host so uploaded images are the only dereferenceable source.
	MediaHost string

	// Stripe checkout (optional; absent config degrades to "coming soon")
	StripeSecretKey    string
	StripePricePro     string
	StripePriceCredits string

	// Quotes provider
	QuotesAPIBaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL: getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-exp-image-generation"),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-2.0-flash"),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "portraits"),

		MediaHost: getEnv("MEDIA_HOST", ""),

		StripeSecretKey:    getEnv("STRIPE_SECRET_KEY", ""),
		StripePricePro:     getEnv("STRIPE_PRICE_PRO", ""),
		StripePriceCredits: getEnv("STRIPE_PRICE_CREDITS", ""),

		QuotesAPIBaseURL: getEnv("QUOTES_API_BASE_URL", "https://query1.finance.yahoo.com"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if cfg.MediaHost == "" && cfg.SupabaseURL != "" {
		if u, err := url.Parse(cfg.SupabaseURL); err == nil {
			cfg.MediaHost = u.Host
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
