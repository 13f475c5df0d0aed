package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/interview-ledger/internal/auth"
	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	prices, err := config.ParsePriceTable(config.DefaultPriceTable, 7200, "Custom")
	require.NoError(t, err)

	cfg := &config.Config{
		Ledger: config.LedgerConfig{
			FreeTrialSeconds:      7200,
			ReferralRewardSeconds: 1800,
			MaxRetries:            1,
			RetryBase:             time.Millisecond,
		},
		Payment: config.PaymentConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "key-secret",
			APIBaseURL:    "http://gateway.invalid",
			APITimeout:    time.Second,
			WebhookSecret: "webhook-secret",
			Prices:        prices,
		},
		Auth:     config.AuthConfig{TokenSecret: "token-secret"},
		Identity: config.IdentityConfig{Timeout: time.Second},
	}

	return NewRouter(db.NewTestDB(sqlDB), cfg, testLogger()), mock
}

func TestRouter_Health(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AccountRequiresBearerToken(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"unauthorized"`)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		token, err := auth.NewVerifier("other-secret").GenerateToken("ana@mail.com", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/me/referral-code", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_WebhookRejectsBadSignature(t *testing.T) {
	router, mock := newTestRouter(t)

	body := `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","amount":10000,"notes":{"email":"ana@mail.com"}}}}}`
	req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader(body))
	req.Header.Set(payment.SignatureHeader, payment.Sign([]byte(body), "wrong-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_MalformedSignupBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/signups", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestRouter_EligibilityRequiresFingerprint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/eligibility", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
