package service

import (
	"fmt"
	"strings"

	"github.com/benx421/interview-ledger/internal/models"
)

const maxPaymentReferenceLength = 255

// ValidateCredit checks that a credit can be applied to a balance
func ValidateCredit(credit models.Credit) error {
	if credit.Seconds <= 0 {
		return fmt.Errorf("credit must grant a positive number of seconds")
	}

	if credit.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}

	return ValidatePaymentReference(credit.PaymentReference)
}

// ValidatePaymentReference checks a gateway payment reference. Empty references
// are allowed for credits that carry no idempotency key.
func ValidatePaymentReference(reference string) error {
	if len(reference) > maxPaymentReferenceLength {
		return fmt.Errorf("payment reference exceeds %d characters", maxPaymentReferenceLength)
	}

	if strings.TrimSpace(reference) != reference {
		return fmt.Errorf("payment reference has surrounding whitespace")
	}

	return nil
}

// ValidateAmount checks a paid amount in minor currency units
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
