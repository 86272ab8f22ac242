package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bleau-backend/internal/models"
	"bleau-backend/internal/stocks"
)

const maxSymbols = 20

type StocksHandler struct {
	client   *stocks.Client
	analyzer *stocks.Analyzer
}

func NewStocksHandler(client *stocks.Client, analyzer *stocks.Analyzer) *StocksHandler {
	return &StocksHandler{client: client, analyzer: analyzer}
}

// GetQuotes serves the dashboard feed: explicit symbols, one sector, or
// every sector ticker by default. Symbols that fail upstream are dropped,
// not fatal.
func (h *StocksHandler) GetQuotes(c *gin.Context) {
	var tickers []string

	if symbols := c.Query("symbols"); symbols != "" {
		for _, s := range strings.Split(symbols, ",") {
			s = strings.ToUpper(strings.TrimSpace(s))
			if s != "" {
				tickers = append(tickers, s)
			}
		}
		if len(tickers) > maxSymbols {
			tickers = tickers[:maxSymbols]
		}
	} else if sector := c.Query("sector"); sector != "" {
		if s, ok := stocks.FindSector(sector); ok {
			tickers = s.Tickers
		}
	} else {
		tickers = stocks.AllTickers()
	}

	if len(tickers) == 0 {
		c.JSON(http.StatusOK, models.QuotesResponse{Quotes: []stocks.Quote{}})
		return
	}

	quotes := h.client.GetQuotes(c.Request.Context(), tickers)
	c.JSON(http.StatusOK, models.QuotesResponse{Quotes: quotes})
}

// Analyze returns a live quote plus an AI briefing for one symbol.
func (h *StocksHandler) Analyze(c *gin.Context) {
	var req models.StockAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Symbol) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "symbol required"})
		return
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Symbol))

	quote, err := h.client.GetQuote(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   fmt.Sprintf("could not find data for %s", ticker),
			Message: err.Error(),
		})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "AI analysis failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StockAnalysisResponse{
		Symbol:    ticker,
		Quote:     *quote,
		Analysis:  analysis,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
