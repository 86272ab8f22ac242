package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bleau-backend/internal/checkout"
	"bleau-backend/internal/config"
	"bleau-backend/internal/detect"
	"bleau-backend/internal/gemini"
	"bleau-backend/internal/handlers"
	"bleau-backend/internal/portrait"
	"bleau-backend/internal/stocks"
	"bleau-backend/internal/storage"
)

func main() {
	// Load .env if present; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey)

	storageClient, err := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	portraitService := portrait.NewService(geminiClient, cfg.MediaHost, cfg.GeminiImageModel, cfg.GeminiTextModel)
	detectService := detect.NewService(geminiClient, cfg.GeminiTextModel)
	stocksClient := stocks.NewClient(cfg.QuotesAPIBaseURL)
	stocksAnalyzer := stocks.NewAnalyzer(geminiClient, cfg.GeminiTextModel)
	checkoutClient := checkout.NewClient(cfg.StripeSecretKey, cfg.StripePricePro, cfg.StripePriceCredits, cfg.BaseURL)

	if !checkoutClient.Configured() {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Checkout will return a coming-soon response.")
	}

	uploadHandler := handlers.NewUploadHandler(storageClient)
	portraitHandler := handlers.NewPortraitHandler(portraitService)
	detectHandler := handlers.NewDetectHandler(detectService)
	stocksHandler := handlers.NewStocksHandler(stocksClient, stocksAnalyzer)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutClient)

	router := gin.Default()

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	api.POST("/upload", uploadHandler.Upload)

	api.POST("/transform", portraitHandler.Transform)
	api.POST("/memorial", portraitHandler.Memorial)
	api.POST("/multi-pet", portraitHandler.MultiPet)
	api.POST("/together", portraitHandler.Together)

	api.POST("/detect", detectHandler.DetectURL)
	api.POST("/detect/text", detectHandler.DetectText)

	api.GET("/stocks", stocksHandler.GetQuotes)
	api.POST("/stocks/analyze", stocksHandler.Analyze)

	api.POST("/checkout", checkoutHandler.CreateSession)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
