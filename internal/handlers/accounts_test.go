package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/middleware"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/service"
	"github.com/benx421/interview-ledger/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMyAccount_Success(t *testing.T) {
	mockLedger := mocks.NewMockLedger(t)
	handler := NewHandler(nil, nil, mockLedger, nil, nil, nil, testLogger())
	ctx := middleware.WithAccountEmail(context.Background(), "ana.maria@mail.com")

	mockLedger.On("GetBalance", ctx, "ana,maria:mail,com").Return(&models.Account{
		Email:                 "ana.maria@mail.com",
		RemainingSeconds:      9000,
		TotalPurchasedSeconds: 1800,
		TotalReferrals:        1,
		ReferralCode:          strPtr("ANAMARIA7K2P"),
		PaymentHistory: []models.PaymentEntry{
			{Amount: 10000, Seconds: 1800, PackageLabel: "Starter", PaymentReference: "pay_1", Plan: "monthly"},
		},
		Referrals: []models.ReferralEntry{
			{ReferredEmail: "bo@mail.com", ReferredName: "Bo", RewardSeconds: 1800},
		},
	}, nil)

	resp, err := handler.GetMyAccount(ctx, api.GetMyAccountRequestObject{})

	require.NoError(t, err)
	ok200, ok := resp.(api.GetMyAccount200JSONResponse)
	require.True(t, ok)
	assert.Equal(t, int64(9000), ok200.RemainingSeconds)
	assert.Equal(t, 1, ok200.TotalReferrals)
	require.Len(t, ok200.PaymentHistory, 1)
	require.NotNil(t, ok200.PaymentHistory[0].Plan)
	assert.Equal(t, "monthly", *ok200.PaymentHistory[0].Plan)
	require.Len(t, ok200.Referrals, 1)
	assert.Equal(t, "bo@mail.com", ok200.Referrals[0].ReferredEmail)
	assert.Nil(t, ok200.DisplayName)
}

func TestGetMyAccount_Errors(t *testing.T) {
	t.Run("no authenticated email", func(t *testing.T) {
		handler := NewHandler(nil, nil, nil, nil, nil, nil, testLogger())

		resp, err := handler.GetMyAccount(context.Background(), api.GetMyAccountRequestObject{})

		require.NoError(t, err)
		assert.IsType(t, api.GetMyAccount401JSONResponse{}, resp)
	})

	t.Run("token email cannot be normalized", func(t *testing.T) {
		handler := NewHandler(nil, nil, nil, nil, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "no-at-sign")

		resp, err := handler.GetMyAccount(ctx, api.GetMyAccountRequestObject{})

		require.NoError(t, err)
		assert.IsType(t, api.GetMyAccount401JSONResponse{}, resp)
	})

	t.Run("account not found", func(t *testing.T) {
		mockLedger := mocks.NewMockLedger(t)
		handler := NewHandler(nil, nil, mockLedger, nil, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "ana@mail.com")

		mockLedger.On("GetBalance", mock.Anything, "ana:mail,com").
			Return(nil, &service.ServiceError{Code: service.ErrCodeAccountNotFound})

		resp, err := handler.GetMyAccount(ctx, api.GetMyAccountRequestObject{})

		require.NoError(t, err)
		notFound, ok := resp.(api.GetMyAccount404JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.ErrorCodeAccountNotFound, notFound.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		mockLedger := mocks.NewMockLedger(t)
		handler := NewHandler(nil, nil, mockLedger, nil, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "ana@mail.com")

		mockLedger.On("GetBalance", mock.Anything, "ana:mail,com").Return(nil, errors.New("connection reset"))

		resp, err := handler.GetMyAccount(ctx, api.GetMyAccountRequestObject{})

		require.NoError(t, err)
		assert.IsType(t, api.GetMyAccount500JSONResponse{}, resp)
	})
}

func TestCreateReferralCode(t *testing.T) {
	t.Run("issues a code", func(t *testing.T) {
		mockReferrals := mocks.NewMockReferralEngine(t)
		handler := NewHandler(nil, nil, nil, mockReferrals, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "ana@mail.com")

		mockReferrals.On("GetOrCreateReferralCode", ctx, "ana:mail,com").Return("ANA7K2P", nil)

		resp, err := handler.CreateReferralCode(ctx, api.CreateReferralCodeRequestObject{})

		require.NoError(t, err)
		ok200, ok := resp.(api.CreateReferralCode200JSONResponse)
		require.True(t, ok)
		assert.Equal(t, "ANA7K2P", ok200.ReferralCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockReferrals := mocks.NewMockReferralEngine(t)
		handler := NewHandler(nil, nil, nil, mockReferrals, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "ana@mail.com")

		mockReferrals.On("GetOrCreateReferralCode", mock.Anything, "ana:mail,com").
			Return("", &service.ServiceError{Code: service.ErrCodeAccountNotFound})

		resp, err := handler.CreateReferralCode(ctx, api.CreateReferralCodeRequestObject{})

		require.NoError(t, err)
		assert.IsType(t, api.CreateReferralCode404JSONResponse{}, resp)
	})

	t.Run("codes exhausted", func(t *testing.T) {
		mockReferrals := mocks.NewMockReferralEngine(t)
		handler := NewHandler(nil, nil, nil, mockReferrals, nil, nil, testLogger())
		ctx := middleware.WithAccountEmail(context.Background(), "ana@mail.com")

		mockReferrals.On("GetOrCreateReferralCode", mock.Anything, "ana:mail,com").
			Return("", &service.ServiceError{Code: service.ErrCodeReferralCodeUnavailable})

		resp, err := handler.CreateReferralCode(ctx, api.CreateReferralCodeRequestObject{})

		require.NoError(t, err)
		failed, ok := resp.(api.CreateReferralCode500JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.ErrorCodeReferralCodeUnavailable, failed.Error)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewHandler(nil, nil, nil, nil, nil, nil, testLogger())

		resp, err := handler.CreateReferralCode(context.Background(), api.CreateReferralCodeRequestObject{})

		require.NoError(t, err)
		assert.IsType(t, api.CreateReferralCode401JSONResponse{}, resp)
	})
}
