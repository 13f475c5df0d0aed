package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGateService_PerformCheck(t *testing.T) {
	t.Run("fresh device and network are allowed", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&bytes.Buffer{}))
		ctx := context.Background()

		mockAccountRepo.On("ExistsByDeviceFingerprint", ctx, "fp-new").Return(false, nil)
		mockAccountRepo.On("ExistsByIPAddress", ctx, "203.0.113.9").Return(false, nil)

		verdict := service.performCheck(ctx, mockAccountRepo, "fp-new", "203.0.113.9")

		assert.True(t, verdict.Allowed)
		assert.Empty(t, verdict.Reason)
	})

	t.Run("used device is rejected before the network is checked", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&bytes.Buffer{}))
		ctx := context.Background()

		mockAccountRepo.On("ExistsByDeviceFingerprint", ctx, "fp-1").Return(true, nil)

		verdict := service.performCheck(ctx, mockAccountRepo, "fp-1", "203.0.113.9")

		assert.False(t, verdict.Allowed)
		assert.Equal(t, models.ReasonDeviceUsed, verdict.Reason)
		mockAccountRepo.AssertNotCalled(t, "ExistsByIPAddress", ctx, "203.0.113.9")
	})

	t.Run("used network is rejected", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&bytes.Buffer{}))
		ctx := context.Background()

		mockAccountRepo.On("ExistsByDeviceFingerprint", ctx, "fp-2").Return(false, nil)
		mockAccountRepo.On("ExistsByIPAddress", ctx, "203.0.113.9").Return(true, nil)

		verdict := service.performCheck(ctx, mockAccountRepo, "fp-2", "203.0.113.9")

		assert.False(t, verdict.Allowed)
		assert.Equal(t, models.ReasonNetworkUsed, verdict.Reason)
	})

	t.Run("empty identifiers are not looked up", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&bytes.Buffer{}))

		verdict := service.performCheck(context.Background(), mockAccountRepo, "", "")

		assert.True(t, verdict.Allowed)
	})

	t.Run("lookup failure fails open and logs", func(t *testing.T) {
		var buf bytes.Buffer
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&buf))
		ctx := context.Background()

		mockAccountRepo.On("ExistsByDeviceFingerprint", ctx, "fp-3").Return(false, errors.New("connection refused"))

		verdict := service.performCheck(ctx, mockAccountRepo, "fp-3", "203.0.113.9")

		assert.True(t, verdict.Allowed)
		assert.Contains(t, buf.String(), LogCodeGateUnavailable)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("network lookup failure fails open", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		service := NewGateService(nil, newTestLogger(&bytes.Buffer{}))
		ctx := context.Background()

		mockAccountRepo.On("ExistsByDeviceFingerprint", ctx, "fp-4").Return(false, nil)
		mockAccountRepo.On("ExistsByIPAddress", ctx, "198.51.100.1").Return(false, errors.New("timeout"))

		verdict := service.performCheck(ctx, mockAccountRepo, "fp-4", "198.51.100.1")

		assert.True(t, verdict.Allowed)
	})
}
