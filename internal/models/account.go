package models

import "time"

// Account is one user's time-ledger document, keyed by the normalized email.
type Account struct {
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	LastUpdated           time.Time       `db:"last_updated" json:"last_updated"`
	ReferredBy            *string         `db:"referred_by" json:"referred_by,omitempty"`
	ReferralCode          *string         `db:"referral_code" json:"referral_code,omitempty"`
	RecordKey             string          `db:"record_key" json:"-"`
	Email                 string          `db:"email" json:"email"`
	DisplayName           string          `db:"display_name" json:"display_name,omitempty"`
	DeviceFingerprint     string          `db:"device_fingerprint" json:"device_fingerprint,omitempty"`
	IPAddress             string          `db:"ip_address" json:"ip_address,omitempty"`
	PaymentHistory        []PaymentEntry  `db:"-" json:"payment_history"`
	Referrals             []ReferralEntry `db:"-" json:"referrals"`
	RemainingSeconds      int64           `db:"remaining_seconds" json:"remaining_seconds"`
	TotalPurchasedSeconds int64           `db:"total_purchased_seconds" json:"total_purchased_seconds"`
	TotalReferrals        int             `db:"total_referrals" json:"total_referrals"`
}

// DeviceInfo is captured once at signup and only read by the signup gate.
type DeviceInfo struct {
	Fingerprint string
	IPAddress   string
}

// CreditResult reports the balances after a credit was applied.
type CreditResult struct {
	NewRemaining      int64
	NewTotalPurchased int64
	WasFirstPurchase  bool
}
