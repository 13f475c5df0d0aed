package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/benx421/interview-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name:     "gate rejection carries only the reason",
			err:      &ServiceError{Code: ErrCodeSignupRejected, Message: models.ReasonNetworkUsed},
			expected: "network already used",
		},
		{
			name: "credit failure includes the store error",
			err: &ServiceError{
				Code:    ErrCodeInternalError,
				Message: "failed to credit payment",
				Err:     errors.New("connection reset by peer"),
			},
			expected: "failed to credit payment: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_UnwrapsRepositorySentinels(t *testing.T) {
	err := &ServiceError{
		Code:    ErrCodeDuplicatePayment,
		Message: "payment already applied",
		Err:     fmt.Errorf("append history: %w", models.ErrDuplicatePaymentReference),
	}

	assert.ErrorIs(t, err, models.ErrDuplicatePaymentReference)
	assert.NotErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, (&ServiceError{Code: ErrCodeMissingEmail}).Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &ServiceError{Code: ErrCodeAccountNotFound, Message: "account not found"})

	assert.True(t, HasCode(wrapped, ErrCodeAccountNotFound))
	assert.False(t, HasCode(wrapped, ErrCodeAccountExists))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeAccountNotFound))
	assert.False(t, HasCode(nil, ErrCodeAccountNotFound))
}
