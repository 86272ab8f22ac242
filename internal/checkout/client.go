package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const sessionTimeout = 15 * time.Second

// ErrNotConfigured signals that payments are not wired up yet; callers
// degrade to a "coming soon" response rather than an error page.
var ErrNotConfigured = errors.New("checkout not configured")

// ErrUnknownPlan rejects plans outside the catalog before any network call.
var ErrUnknownPlan = errors.New("price not configured")

// Client creates Stripe Checkout sessions through the form-encoded API.
type Client struct {
	apiURL       string
	secretKey    string
	pricePro     string
	priceCredits string
	successURL   string
	cancelURL    string
	httpClient   *http.Client
}

func NewClient(secretKey, pricePro, priceCredits, baseURL string) *Client {
	return &Client{
		apiURL:       "https://api.stripe.com/v1/checkout/sessions",
		secretKey:    secretKey,
		pricePro:     pricePro,
		priceCredits: priceCredits,
		successURL:   baseURL + "/pricing?success=true",
		cancelURL:    baseURL + "/pricing?canceled=true",
		httpClient:   &http.Client{Timeout: sessionTimeout},
	}
}

// Configured reports whether a secret key is present.
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// CreateSession opens a checkout session for the given plan ("pro" is a
// subscription, anything else buys a credit pack) and returns its URL.
func (c *Client) CreateSession(ctx context.Context, plan string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	priceID := c.priceCredits
	mode := "payment"
	if plan == "pro" {
		priceID = c.pricePro
		mode = "subscription"
	}
	if priceID == "" {
		return "", ErrUnknownPlan
	}

	form := url.Values{}
	form.Set("mode", mode)
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	if plan != "pro" {
		form.Set("payment_intent_data[metadata][type]", "credits")
		form.Set("payment_intent_data[metadata][amount]", "10")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var session struct {
		URL   string `json:"url"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}
	if session.Error != nil {
		return "", fmt.Errorf("stripe error: %s", session.Error.Message)
	}
	if session.URL == "" {
		return "", fmt.Errorf("no checkout url in response, body: %s", string(body))
	}

	return session.URL, nil
}
