package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/benx421/interview-ledger/internal/config"
)

// Provider names accepted at signup.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// IsThirdParty reports whether the login identity was created upstream before
// the signup gate ran, and so must be rolled back if the gate rejects.
func IsThirdParty(provider string) bool {
	return provider != "" && provider != ProviderPassword
}

// Client deletes upstream login identities through the identity toolkit REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.IdentityConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type deleteRequest struct {
	IDToken string `json:"idToken"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// DeleteIdentity removes the upstream account identified by the caller's ID token.
func (c *Client) DeleteIdentity(ctx context.Context, idToken string) error {
	if idToken == "" {
		return fmt.Errorf("missing id token")
	}
	if c.apiKey == "" {
		c.logger.Warn("identity api key not configured, skipping upstream identity rollback")
		return nil
	}

	payload, err := json.Marshal(deleteRequest{IDToken: idToken})
	if err != nil {
		return fmt.Errorf("failed to encode delete request: %w", err)
	}

	endpoint := c.baseURL + "/accounts:delete?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // body fully consumed below

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("failed to read identity provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
			return fmt.Errorf("identity provider rejected delete (%d): %s", resp.StatusCode, envelope.Error.Message)
		}
		return fmt.Errorf("identity provider rejected delete: status %d", resp.StatusCode)
	}

	c.logger.Info("rolled back upstream identity")
	return nil
}
