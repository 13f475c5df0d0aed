//go:build integration

//nolint:errcheck // unchecked errors are acceptable in test files
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benx421/interview-ledger/internal/auth"
	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	itWebhookSecret = "it-webhook-secret"
	itTokenSecret   = "it-token-secret"
)

// testServer runs the full router against the database named by DB_* env vars.
type testServer struct {
	server   *httptest.Server
	database *db.DB
	cfg      *config.Config
}

func setupIntegration(t *testing.T) *testServer {
	t.Helper()

	t.Setenv("PAYMENT_KEY_ID", "rzp_test_it")
	t.Setenv("PAYMENT_KEY_SECRET", "it-key-secret")
	t.Setenv("TRUSTED_PROXIES", "127.0.0.1,::1")
	t.Setenv("PAYMENT_WEBHOOK_SECRET", itWebhookSecret)
	t.Setenv("AUTH_TOKEN_SECRET", itTokenSecret)
	t.Setenv("IDENTITY_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to database")

	_, err = database.Migrate(context.Background())
	require.NoError(t, err, "failed to migrate")

	_, err = database.ExecContext(context.Background(), `
		TRUNCATE TABLE idempotency_keys, referrals, payment_history, accounts CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")

	ts := &testServer{
		server:   httptest.NewServer(NewRouter(database, cfg, logger)),
		database: database,
		cfg:      cfg,
	}
	t.Cleanup(func() {
		ts.server.Close()
		_ = ts.database.Close()
	})
	return ts
}

func (ts *testServer) signup(t *testing.T, email, fingerprint, ip, referralCode string) *http.Response {
	t.Helper()

	body := map[string]any{
		"email":              email,
		"device_fingerprint": fingerprint,
	}
	if referralCode != "" {
		body["referral_code"] = referralCode
	}
	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/v1/signups", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) webhook(t *testing.T, email, paymentID string, amount int64) *http.Response {
	t.Helper()

	body := fmt.Sprintf(
		`{"event":"payment.captured","payload":{"payment":{"entity":{"id":%q,"amount":%d,"currency":"INR","notes":{"email":%q}}}}}`,
		paymentID, amount, email,
	)

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+WebhookPath, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(payment.SignatureHeader, payment.Sign([]byte(body), itWebhookSecret))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) account(t *testing.T, email string) map[string]any {
	t.Helper()

	token, err := auth.NewVerifier(itTokenSecret).GenerateToken(email, time.Minute)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.server.URL+"/api/v1/accounts/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (ts *testServer) referralCode(t *testing.T, email string) string {
	t.Helper()

	token, err := auth.NewVerifier(itTokenSecret).GenerateToken(email, time.Minute)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/v1/accounts/me/referral-code", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["referral_code"]
}

func TestIntegration_ReferralRewardedOnceForFirstPurchase(t *testing.T) {
	ts := setupIntegration(t)
	trial := float64(ts.cfg.Ledger.FreeTrialSeconds)
	reward := float64(ts.cfg.Ledger.ReferralRewardSeconds)

	resp := ts.signup(t, "ana@mail.com", "fp-ana", "198.51.100.1", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	code := ts.referralCode(t, "ana@mail.com")
	require.NotEmpty(t, code)
	assert.Equal(t, code, ts.referralCode(t, "ana@mail.com"))

	resp = ts.signup(t, "bo@mail.com", "fp-bo", "198.51.100.2", code)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ts.webhook(t, "bo@mail.com", "pay_first", 10000)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ts.webhook(t, "bo@mail.com", "pay_second", 30000)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	ana := ts.account(t, "ana@mail.com")
	assert.Equal(t, trial+reward, ana["remaining_seconds"])
	assert.Equal(t, float64(1), ana["total_referrals"])
	assert.Len(t, ana["referrals"], 1)

	bo := ts.account(t, "bo@mail.com")
	assert.Equal(t, trial+1800+7200, bo["remaining_seconds"])
	assert.Equal(t, float64(1800+7200), bo["total_purchased_seconds"])
}

func TestIntegration_GateRejectsReusedDevice(t *testing.T) {
	ts := setupIntegration(t)

	resp := ts.signup(t, "ana@mail.com", "fp-shared", "198.51.100.1", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ts.signup(t, "bo@mail.com", "fp-shared", "198.51.100.2", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIntegration_ConcurrentCreditsAllApply(t *testing.T) {
	ts := setupIntegration(t)

	resp := ts.signup(t, "ana@mail.com", "fp-ana", "198.51.100.1", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	const numGoroutines = 10
	var wg sync.WaitGroup
	results := make(chan int, numGoroutines)

	for i := range numGoroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.webhook(t, "ana@mail.com", fmt.Sprintf("pay_concurrent_%d", idx), 10000)
			results <- resp.StatusCode
			resp.Body.Close()
		}(i)
	}

	wg.Wait()
	close(results)

	for code := range results {
		assert.Equal(t, http.StatusOK, code)
	}

	ana := ts.account(t, "ana@mail.com")
	assert.Equal(t, float64(ts.cfg.Ledger.FreeTrialSeconds+numGoroutines*1800), ana["remaining_seconds"])
	assert.Equal(t, float64(numGoroutines*1800), ana["total_purchased_seconds"])
}

func TestIntegration_ConcurrentReplaysCreditOnce(t *testing.T) {
	ts := setupIntegration(t)

	resp := ts.signup(t, "ana@mail.com", "fp-ana", "198.51.100.1", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	const numGoroutines = 10
	var wg sync.WaitGroup

	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.webhook(t, "ana@mail.com", "pay_replayed", 10000)
			resp.Body.Close()
		}()
	}
	wg.Wait()

	ana := ts.account(t, "ana@mail.com")
	assert.Equal(t, float64(ts.cfg.Ledger.FreeTrialSeconds+1800), ana["remaining_seconds"])
	assert.Len(t, ana["payment_history"], 2)
}
