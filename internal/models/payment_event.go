package models

// PaymentState is a step of the payment confirmation state machine.
type PaymentState string

const (
	PaymentStateReceived          PaymentState = "received"
	PaymentStateSignatureVerified PaymentState = "signature_verified"
	PaymentStateEmailResolved     PaymentState = "email_resolved"
	PaymentStateAmountMapped      PaymentState = "amount_mapped"
	PaymentStateCredited          PaymentState = "credited"
	PaymentStateReferralChecked   PaymentState = "referral_checked"
	PaymentStateDone              PaymentState = "done"
	PaymentStateIgnored           PaymentState = "ignored"
	PaymentStateRejected          PaymentState = "rejected"
)

// IsTerminal reports whether no further transition follows s.
func (s PaymentState) IsTerminal() bool {
	return s == PaymentStateDone || s == PaymentStateIgnored || s == PaymentStateRejected
}

// PaymentEvent is a gateway-neutral confirmed payment.
type PaymentEvent struct {
	Email            string
	PaymentReference string
	PackageLabel     string
	Plan             string
	Amount           int64
}

// CheckoutConfirmation is the client-side checkout success callback payload.
type CheckoutConfirmation struct {
	Email            string
	PackageLabel     string
	PaymentReference string
	OrderID          string
	Signature        string
	Plan             string
	Amount           int64
}

// PaymentResult is the terminal outcome of processing one payment event.
type PaymentResult struct {
	State                 PaymentState
	Trace                 []PaymentState
	Email                 string
	PaymentReference      string
	GrantedSeconds        int64
	RemainingSeconds      int64
	TotalPurchasedSeconds int64
	Duplicate             bool
	FirstPurchase         bool
	ReferralRewarded      bool
	// BalanceUnavailable is set when a replayed payment's balance could not be read.
	BalanceUnavailable bool
}
