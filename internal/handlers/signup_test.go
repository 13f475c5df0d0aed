package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/middleware"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/service"
	"github.com/benx421/interview-ledger/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func TestCreateSignup_Success(t *testing.T) {
	mockRegistrar := mocks.NewMockRegistrar(t)
	handler := NewHandler(mockRegistrar, nil, nil, nil, nil, nil, testLogger())

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	google := api.Google
	ctx := middleware.WithClientIP(context.Background(), "198.51.100.7")

	mockRegistrar.On("Signup", ctx, models.SignupRequest{
		Email:             "ana@mail.com",
		DisplayName:       "Ana",
		DeviceFingerprint: "fp-1",
		IPAddress:         "198.51.100.7",
		ReferralCode:      "BOB7K2P",
		Provider:          "google",
		IDToken:           "tok",
	}).Return(&models.Account{
		Email:            "ana@mail.com",
		DisplayName:      "Ana",
		RemainingSeconds: 7200,
		CreatedAt:        created,
		LastUpdated:      created,
		PaymentHistory: []models.PaymentEntry{
			{Date: created, Seconds: 7200, PackageLabel: models.WelcomeBonusLabel, PaymentReference: "welcome:ana:mail,com"},
		},
	}, nil)

	resp, err := handler.CreateSignup(ctx, api.CreateSignupRequestObject{
		Body: &api.CreateSignupJSONRequestBody{
			Email:             "ana@mail.com",
			DisplayName:       strPtr(" Ana "),
			DeviceFingerprint: "fp-1",
			ReferralCode:      strPtr("BOB7K2P"),
			Provider:          &google,
			IdToken:           strPtr("tok"),
		},
	})

	require.NoError(t, err)
	created201, ok := resp.(api.CreateSignup201JSONResponse)
	require.True(t, ok)
	assert.Equal(t, int64(7200), created201.RemainingSeconds)
	require.Len(t, created201.PaymentHistory, 1)
	assert.Equal(t, models.WelcomeBonusLabel, created201.PaymentHistory[0].PackageLabel)
	assert.Empty(t, created201.Referrals)
	assert.NotNil(t, created201.Referrals)
}

func TestCreateSignup_ServiceErrors(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedType any
		expectedCode api.ErrorCode
	}{
		{"gate rejected", &service.ServiceError{Code: service.ErrCodeSignupRejected, Message: models.ReasonDeviceUsed}, api.CreateSignup403JSONResponse{}, api.ErrorCodeSignupRejected},
		{"account exists", &service.ServiceError{Code: service.ErrCodeAccountExists}, api.CreateSignup409JSONResponse{}, api.ErrorCodeAccountExists},
		{"invalid email", &service.ServiceError{Code: service.ErrCodeInvalidEmail}, api.CreateSignup400JSONResponse{}, api.ErrorCodeInvalidEmail},
		{"missing fingerprint", &service.ServiceError{Code: service.ErrCodeInvalidRequest}, api.CreateSignup400JSONResponse{}, api.ErrorCodeInvalidRequest},
		{"write conflict", &service.ServiceError{Code: service.ErrCodeWriteConflict}, api.CreateSignup500JSONResponse{}, api.ErrorCodeWriteConflict},
		{"unexpected", errors.New("boom"), api.CreateSignup500JSONResponse{}, api.ErrorCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegistrar := mocks.NewMockRegistrar(t)
			handler := NewHandler(mockRegistrar, nil, nil, nil, nil, nil, testLogger())

			mockRegistrar.On("Signup", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			resp, err := handler.CreateSignup(context.Background(), api.CreateSignupRequestObject{
				Body: &api.CreateSignupJSONRequestBody{Email: "ana@mail.com", DeviceFingerprint: "fp-1"},
			})
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, resp)

			switch r := resp.(type) {
			case api.CreateSignup400JSONResponse:
				assert.Equal(t, tt.expectedCode, r.Error)
			case api.CreateSignup403JSONResponse:
				assert.Equal(t, tt.expectedCode, r.Error)
				assert.Equal(t, models.ReasonDeviceUsed, r.Message)
			case api.CreateSignup409JSONResponse:
				assert.Equal(t, tt.expectedCode, r.Error)
			case api.CreateSignup500JSONResponse:
				assert.Equal(t, tt.expectedCode, r.Error)
			}
		})
	}
}

func TestCheckEligibility(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		mockGate := mocks.NewMockGatekeeper(t)
		handler := NewHandler(nil, mockGate, nil, nil, nil, nil, testLogger())
		ctx := middleware.WithClientIP(context.Background(), "203.0.113.9")

		mockGate.On("CheckEligibility", ctx, "fp-1", "203.0.113.9").Return(&models.Eligibility{Allowed: true})

		resp, err := handler.CheckEligibility(ctx, api.CheckEligibilityRequestObject{
			Params: api.CheckEligibilityParams{DeviceFingerprint: "fp-1"},
		})

		require.NoError(t, err)
		ok200, ok := resp.(api.CheckEligibility200JSONResponse)
		require.True(t, ok)
		assert.True(t, ok200.Allowed)
		assert.Nil(t, ok200.Reason)
	})

	t.Run("rejected carries the reason", func(t *testing.T) {
		mockGate := mocks.NewMockGatekeeper(t)
		handler := NewHandler(nil, mockGate, nil, nil, nil, nil, testLogger())

		mockGate.On("CheckEligibility", mock.Anything, "fp-1", "").
			Return(&models.Eligibility{Allowed: false, Reason: models.ReasonNetworkUsed})

		resp, err := handler.CheckEligibility(context.Background(), api.CheckEligibilityRequestObject{
			Params: api.CheckEligibilityParams{DeviceFingerprint: "fp-1"},
		})

		require.NoError(t, err)
		ok200, ok := resp.(api.CheckEligibility200JSONResponse)
		require.True(t, ok)
		assert.False(t, ok200.Allowed)
		require.NotNil(t, ok200.Reason)
		assert.Equal(t, models.ReasonNetworkUsed, *ok200.Reason)
	})

	t.Run("blank fingerprint", func(t *testing.T) {
		handler := NewHandler(nil, nil, nil, nil, nil, nil, testLogger())

		resp, err := handler.CheckEligibility(context.Background(), api.CheckEligibilityRequestObject{
			Params: api.CheckEligibilityParams{DeviceFingerprint: "   "},
		})

		require.NoError(t, err)
		badResp, ok := resp.(api.CheckEligibility400JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.ErrorCodeInvalidRequest, badResp.Error)
	})
}
