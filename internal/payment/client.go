package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/benx421/interview-ledger/internal/config"
)

// ErrPaymentNotFound is returned when the gateway has no payment with the given id.
var ErrPaymentNotFound = errors.New("payment not found")

const maxGatewayResponseBytes = 1 << 20

// Client reads payments back from the gateway REST API, authenticated with
// the merchant key pair.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.PaymentConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.APITimeout},
		baseURL:    strings.TrimSuffix(cfg.APIBaseURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

type gatewayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// FetchPayment returns the payment recorded by the gateway under paymentID.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Entity, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("missing payment id")
	}

	endpoint := c.baseURL + "/payments/" + url.PathEscape(paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // body fully consumed below

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read payment gateway response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrPaymentNotFound
	case resp.StatusCode != http.StatusOK:
		var envelope gatewayError
		if json.Unmarshal(body, &envelope) == nil && envelope.Error.Description != "" {
			if envelope.Error.Code == "BAD_REQUEST_ERROR" && resp.StatusCode == http.StatusBadRequest {
				return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, envelope.Error.Description)
			}
			return nil, fmt.Errorf("payment gateway rejected fetch (%d): %s", resp.StatusCode, envelope.Error.Description)
		}
		return nil, fmt.Errorf("payment gateway rejected fetch: status %d", resp.StatusCode)
	}

	var entity Entity
	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, fmt.Errorf("invalid payment gateway response: %w", err)
	}
	return &entity, nil
}
