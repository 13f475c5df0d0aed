package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidSignature        = "invalid_signature"
	ErrCodeMissingEmail            = "missing_email"
	ErrCodeInvalidEmail            = "invalid_email"
	ErrCodeInvalidAmount           = "invalid_amount"
	ErrCodeInvalidRequest          = "invalid_request"
	ErrCodeAccountNotFound         = "account_not_found"
	ErrCodeAccountExists           = "account_exists"
	ErrCodeDuplicatePayment        = "duplicate_payment_reference"
	ErrCodeSignupRejected          = "signup_rejected"
	ErrCodeReferralCodeUnavailable = "referral_code_unavailable"
	ErrCodeWriteConflict           = "write_conflict"
	ErrCodeInternalError           = "internal_error"
)

// Codes attached to log records for failures that never reach a caller.
const (
	LogCodeGateUnavailable       = "gate_check_unavailable"
	LogCodeReferralRewardFailure = "referral_reward_failure"
	LogCodeUnmatchedPayment      = "unmatched_payment"
)

// HasCode reports whether err is a ServiceError carrying code.
func HasCode(err error, code string) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}
