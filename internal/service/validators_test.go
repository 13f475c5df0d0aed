package service

import (
	"strings"
	"testing"

	"github.com/benx421/interview-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCredit(t *testing.T) {
	tests := []struct {
		name    string
		credit  models.Credit
		wantErr bool
	}{
		{
			name:   "paid credit",
			credit: models.Credit{Seconds: 1800, Amount: 10000, PaymentReference: "pay_1"},
		},
		{
			name:   "bonus credit without amount",
			credit: models.Credit{Seconds: 600, PaymentReference: "welcome:a:b,com"},
		},
		{
			name:   "no reference",
			credit: models.Credit{Seconds: 60},
		},
		{
			name:    "zero seconds",
			credit:  models.Credit{Seconds: 0, Amount: 10000},
			wantErr: true,
		},
		{
			name:    "negative seconds",
			credit:  models.Credit{Seconds: -60},
			wantErr: true,
		},
		{
			name:    "negative amount",
			credit:  models.Credit{Seconds: 60, Amount: -1},
			wantErr: true,
		},
		{
			name:    "padded reference",
			credit:  models.Credit{Seconds: 60, PaymentReference: " pay_1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredit(tt.credit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePaymentReference_Length(t *testing.T) {
	assert.NoError(t, ValidatePaymentReference(strings.Repeat("a", 255)))
	assert.Error(t, ValidatePaymentReference(strings.Repeat("a", 256)))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-100))
}
