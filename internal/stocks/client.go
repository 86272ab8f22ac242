package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const quoteTimeout = 10 * time.Second

// Quote is a normalized market quote. Fields the provider omits stay at
// their zero value.
type Quote struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercent"`
	Volume        int64    `json:"volume"`
	MarketCap     int64    `json:"marketCap"`
	PERatio       *float64 `json:"peRatio"`
	High52w       float64  `json:"high52w"`
	Low52w        float64  `json:"low52w"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			ShortName                  string   `json:"shortName"`
			LongName                   string   `json:"longName"`
			RegularMarketPrice         float64  `json:"regularMarketPrice"`
			RegularMarketChange        float64  `json:"regularMarketChange"`
			RegularMarketChangePercent float64  `json:"regularMarketChangePercent"`
			RegularMarketVolume        int64    `json:"regularMarketVolume"`
			MarketCap                  int64    `json:"marketCap"`
			TrailingPE                 *float64 `json:"trailingPE"`
			FiftyTwoWeekHigh           float64  `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            float64  `json:"fiftyTwoWeekLow"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Client talks to the public quotes endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// GetQuote fetches a single symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	qctx, cancel := context.WithTimeout(ctx, quoteTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, symbol)
	req, err := http.NewRequestWithContext(qctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get quote for %s: status %d, body: %s", symbol, resp.StatusCode, string(body))
	}

	var result quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}

	q := result.QuoteResponse.Result[0]
	name := q.ShortName
	if name == "" {
		name = q.LongName
	}
	if name == "" {
		name = q.Symbol
	}

	return &Quote{
		Symbol:        q.Symbol,
		Name:          name,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		Volume:        q.RegularMarketVolume,
		MarketCap:     q.MarketCap,
		PERatio:       q.TrailingPE,
		High52w:       q.FiftyTwoWeekHigh,
		Low52w:        q.FiftyTwoWeekLow,
	}, nil
}

// GetQuotes fans out one call per symbol and returns whatever succeeded,
// in input order. A failed symbol drops out rather than failing the batch.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) []Quote {
	results := make([]*Quote, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		i, symbol := i, symbol
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := c.GetQuote(ctx, symbol)
			if err != nil {
				return
			}
			results[i] = q
		}()
	}
	wg.Wait()

	quotes := make([]Quote, 0, len(symbols))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}
	return quotes
}
