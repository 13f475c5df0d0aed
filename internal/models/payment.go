package models

import (
	"time"

	"github.com/google/uuid"
)

// Reserved payment_reference prefixes for ledger-originated entries.
const (
	WelcomeReferencePrefix  = "welcome:"
	ReferralReferencePrefix = "referral:"
)

// WelcomeBonusLabel is the package label of the free-trial grant.
const WelcomeBonusLabel = "Welcome Bonus"

// ReferralBonusLabel is the package label of a referrer's reward entry.
const ReferralBonusLabel = "Referral Bonus"

// PaymentEntry is an append-only line of an account's payment history.
// Amount is in minor currency units; zero marks a free grant.
type PaymentEntry struct {
	Date             time.Time `db:"created_at" json:"date"`
	PackageLabel     string    `db:"package_label" json:"package_label"`
	PaymentReference string    `db:"payment_reference" json:"payment_reference"`
	Plan             string    `db:"plan" json:"plan,omitempty"`
	RecordKey        string    `db:"record_key" json:"-"`
	Amount           int64     `db:"amount" json:"amount"`
	Seconds          int64     `db:"seconds" json:"seconds"`
	ID               uuid.UUID `db:"id" json:"-"`
}

// IsPaid reports whether the entry counts toward total_purchased_seconds.
func (e PaymentEntry) IsPaid() bool {
	return e.Amount > 0
}

// Credit describes a single additive mutation requested from the ledger.
type Credit struct {
	PackageLabel     string
	PaymentReference string
	Plan             string
	Seconds          int64
	Amount           int64
}
