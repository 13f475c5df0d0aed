package service

import (
	"context"

	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/payment"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Gatekeeper decides whether a device and network may create a new account
type Gatekeeper interface {
	CheckEligibility(ctx context.Context, deviceFingerprint, ipAddress string) *models.Eligibility
}

// Ledger owns account creation and every balance mutation
type Ledger interface {
	CreateAccount(ctx context.Context, key, email, displayName string, device models.DeviceInfo) (*models.Account, error)
	CreditTime(ctx context.Context, key string, credit models.Credit) (*models.CreditResult, error)
	GetBalance(ctx context.Context, key string) (*models.Account, error)
}

// ReferralEngine issues referral codes, attributes signups and pays referrers
type ReferralEngine interface {
	GetOrCreateReferralCode(ctx context.Context, key string) (string, error)
	AttributeSignup(ctx context.Context, newAccountKey, codeOrKey string) (bool, error)
	RewardIfFirstPurchase(ctx context.Context, referredKey string, wasFirstPurchase bool, referredEmail, referredName string) (bool, error)
}

// Registrar runs the gated signup flow
type Registrar interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.Account, error)
}

// PaymentProcessor turns verified gateway confirmations into ledger credits
type PaymentProcessor interface {
	ProcessWebhook(ctx context.Context, rawBody []byte, signature string) (*models.PaymentResult, error)
	ProcessCheckout(ctx context.Context, confirmation models.CheckoutConfirmation) (*models.PaymentResult, error)
}

// PaymentFetcher loads a payment from the gateway's own records
type PaymentFetcher interface {
	FetchPayment(ctx context.Context, paymentID string) (*payment.Entity, error)
}

// IdentityRemover rolls back an upstream identity after a rejected signup
type IdentityRemover interface {
	DeleteIdentity(ctx context.Context, idToken string) error
}

// Ensure concrete types implement interfaces
var (
	_ Gatekeeper       = (*GateService)(nil)
	_ Ledger           = (*LedgerService)(nil)
	_ ReferralEngine   = (*ReferralService)(nil)
	_ Registrar        = (*SignupService)(nil)
	_ PaymentProcessor = (*PaymentService)(nil)
	_ PaymentFetcher   = (*payment.Client)(nil)
)
