// Package models holds the persisted record types of the time ledger.
package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an account already exists at the record key
	ErrAlreadyExists = errors.New("already exists")

	// ErrDuplicatePaymentReference indicates the payment reference is already in some history
	ErrDuplicatePaymentReference = errors.New("duplicate payment reference")

	// ErrReferralCodeTaken indicates another account already owns the generated code
	ErrReferralCodeTaken = errors.New("referral code taken")

	// ErrAlreadyRewarded indicates the referred account already paid out its referrer
	ErrAlreadyRewarded = errors.New("referral already rewarded")

	// ErrWriteConflict indicates the transaction lost a serialization race and may be retried
	ErrWriteConflict = errors.New("write conflict")
)
