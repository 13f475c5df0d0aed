package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/identity"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/payment"
)

// paymentTransitions lists the states reachable from each non-terminal state.
var paymentTransitions = map[models.PaymentState][]models.PaymentState{
	models.PaymentStateReceived:          {models.PaymentStateSignatureVerified, models.PaymentStateRejected},
	models.PaymentStateSignatureVerified: {models.PaymentStateEmailResolved, models.PaymentStateIgnored, models.PaymentStateRejected},
	models.PaymentStateEmailResolved:     {models.PaymentStateAmountMapped, models.PaymentStateRejected},
	models.PaymentStateAmountMapped:      {models.PaymentStateCredited, models.PaymentStateDone, models.PaymentStateRejected},
	models.PaymentStateCredited:          {models.PaymentStateReferralChecked},
	models.PaymentStateReferralChecked:   {models.PaymentStateDone},
}

// paymentRun tracks one event through the confirmation states.
type paymentRun struct {
	result *models.PaymentResult
}

func newPaymentRun() *paymentRun {
	return &paymentRun{
		result: &models.PaymentResult{
			State: models.PaymentStateReceived,
			Trace: []models.PaymentState{models.PaymentStateReceived},
		},
	}
}

func (r *paymentRun) advance(to models.PaymentState) {
	for _, next := range paymentTransitions[r.result.State] {
		if next == to {
			r.result.State = to
			r.result.Trace = append(r.result.Trace, to)
			return
		}
	}
	panic(fmt.Sprintf("invalid payment transition %s -> %s", r.result.State, to))
}

// reject moves the run to rejected and returns err for the caller.
func (r *paymentRun) reject(err *ServiceError) (*models.PaymentResult, error) {
	r.advance(models.PaymentStateRejected)
	return r.result, err
}

// PaymentService verifies gateway confirmations and credits the paying account.
// Webhooks and client checkout callbacks share the same settlement path, and
// a payment reference is applied at most once whichever arrives first.
type PaymentService struct {
	ledger    Ledger
	referrals ReferralEngine
	gateway   PaymentFetcher
	cfg       config.PaymentConfig
	logger    *slog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	ledger Ledger,
	referrals ReferralEngine,
	gateway PaymentFetcher,
	cfg config.PaymentConfig,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		ledger:    ledger,
		referrals: referrals,
		gateway:   gateway,
		cfg:       cfg,
		logger:    logger,
	}
}

// ProcessWebhook handles a raw gateway webhook delivery. Events other than a
// captured payment are acknowledged and ignored.
func (s *PaymentService) ProcessWebhook(ctx context.Context, rawBody []byte, signature string) (*models.PaymentResult, error) {
	run := newPaymentRun()
	defer s.logOutcome(run)

	if !payment.VerifyWebhook(rawBody, signature, s.cfg.WebhookSecret) {
		s.logger.Warn("webhook signature mismatch")
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidSignature,
			Message: "invalid signature",
		})
	}
	run.advance(models.PaymentStateSignatureVerified)

	event, err := payment.ParseWebhook(rawBody)
	if err != nil {
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "malformed webhook payload",
			Err:     err,
		})
	}

	if !event.IsCapture() {
		s.logger.Info("webhook event ignored", slog.String("event", event.Event))
		run.advance(models.PaymentStateIgnored)
		return run.result, nil
	}

	return s.settle(ctx, run, event.PaymentEvent())
}

// ProcessCheckout handles the client's checkout success callback. The gateway
// signature over order and payment ids is checked with the API key secret, then
// the payment is loaded from the gateway. Amount, email, plan and label are
// taken from the gateway record; the values in confirmation are never credited.
func (s *PaymentService) ProcessCheckout(ctx context.Context, confirmation models.CheckoutConfirmation) (*models.PaymentResult, error) {
	run := newPaymentRun()
	defer s.logOutcome(run)

	if !payment.VerifyCheckout(confirmation.OrderID, confirmation.PaymentReference, confirmation.Signature, s.cfg.KeySecret) {
		s.logger.Warn("checkout signature mismatch",
			slog.String("payment_reference", confirmation.PaymentReference),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidSignature,
			Message: "invalid signature",
		})
	}
	run.advance(models.PaymentStateSignatureVerified)
	run.result.PaymentReference = confirmation.PaymentReference

	captured, err := s.gateway.FetchPayment(ctx, confirmation.PaymentReference)
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		s.logger.Warn("checkout payment unknown to gateway",
			slog.String("payment_reference", confirmation.PaymentReference),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "payment not found",
			Err:     err,
		})
	case err != nil:
		s.logger.Error("failed to load checkout payment from gateway",
			slog.String("payment_reference", confirmation.PaymentReference),
			slog.String("error", err.Error()),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to verify payment",
			Err:     err,
		})
	}

	if captured.ID != confirmation.PaymentReference || captured.OrderID != confirmation.OrderID {
		s.logger.Warn("checkout payment does not match order",
			slog.String("payment_reference", confirmation.PaymentReference),
			slog.String("order_id", confirmation.OrderID),
			slog.String("gateway_order_id", captured.OrderID),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "payment does not belong to order",
		})
	}
	if !captured.IsCaptured() {
		s.logger.Info("checkout payment not captured yet, webhook will settle it",
			slog.String("payment_reference", confirmation.PaymentReference),
			slog.String("status", captured.Status),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "payment not captured",
		})
	}

	event := captured.PaymentEvent()
	s.warnOnClaimMismatch(confirmation, event)

	return s.settle(ctx, run, event)
}

// warnOnClaimMismatch logs client-reported values that disagree with the gateway.
func (s *PaymentService) warnOnClaimMismatch(confirmation models.CheckoutConfirmation, event models.PaymentEvent) {
	claimedEmail := strings.TrimSpace(confirmation.Email)
	emailDiffers := claimedEmail != "" && !strings.EqualFold(claimedEmail, event.Email)
	amountDiffers := confirmation.Amount != 0 && confirmation.Amount != event.Amount
	if !emailDiffers && !amountDiffers {
		return
	}

	s.logger.Warn("checkout claims differ from gateway payment",
		slog.String("payment_reference", event.PaymentReference),
		slog.String("claimed_email", claimedEmail),
		slog.String("gateway_email", event.Email),
		slog.Int64("claimed_amount", confirmation.Amount),
		slog.Int64("gateway_amount", event.Amount),
	)
}

// settle carries a verified event from email resolution to done.
func (s *PaymentService) settle(ctx context.Context, run *paymentRun, event models.PaymentEvent) (*models.PaymentResult, error) {
	result := run.result
	result.PaymentReference = event.PaymentReference
	result.Email = event.Email

	if event.Email == "" {
		s.logger.Error("captured payment has no email, needs manual reconciliation",
			slog.String("code", LogCodeUnmatchedPayment),
			slog.String("payment_reference", event.PaymentReference),
			slog.Int64("amount", event.Amount),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeMissingEmail,
			Message: "missing email",
		})
	}

	key, err := identity.Normalize(event.Email)
	if err != nil {
		s.logger.Error("captured payment email cannot be resolved",
			slog.String("code", LogCodeUnmatchedPayment),
			slog.String("payment_reference", event.PaymentReference),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeMissingEmail,
			Message: "email cannot be resolved",
			Err:     err,
		})
	}
	run.advance(models.PaymentStateEmailResolved)

	if err := ValidateAmount(event.Amount); err != nil {
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		})
	}
	if event.PaymentReference == "" {
		return run.reject(&ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "payment reference is required",
		})
	}

	tier, exact := s.cfg.Prices.Lookup(event.Amount)
	if !exact {
		s.logger.Warn("unrecognised payment amount, using default tier",
			slog.String("payment_reference", event.PaymentReference),
			slog.Int64("amount", event.Amount),
			slog.Int64("seconds", tier.Seconds),
		)
	}
	label := event.PackageLabel
	if label == "" {
		label = tier.Label
	}
	run.advance(models.PaymentStateAmountMapped)

	credit, err := s.ledger.CreditTime(ctx, key, models.Credit{
		PackageLabel:     label,
		PaymentReference: event.PaymentReference,
		Plan:             event.Plan,
		Seconds:          tier.Seconds,
		Amount:           event.Amount,
	})
	switch {
	case HasCode(err, ErrCodeDuplicatePayment):
		s.logger.Info("payment already applied",
			slog.String("record_key", key),
			slog.String("payment_reference", event.PaymentReference),
		)
		result.Duplicate = true
		s.fillBalance(ctx, result, key)
		run.advance(models.PaymentStateDone)
		return result, nil
	case HasCode(err, ErrCodeAccountNotFound):
		s.logger.Error("payment for unknown account, needs manual reconciliation",
			slog.String("code", LogCodeUnmatchedPayment),
			slog.String("record_key", key),
			slog.String("payment_reference", event.PaymentReference),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		})
	case err != nil:
		s.logger.Error("failed to credit payment",
			slog.String("record_key", key),
			slog.String("payment_reference", event.PaymentReference),
			slog.String("error", err.Error()),
		)
		return run.reject(&ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to credit payment",
			Err:     err,
		})
	}
	result.GrantedSeconds = tier.Seconds
	result.RemainingSeconds = credit.NewRemaining
	result.TotalPurchasedSeconds = credit.NewTotalPurchased
	result.FirstPurchase = credit.WasFirstPurchase
	run.advance(models.PaymentStateCredited)

	rewarded, err := s.referrals.RewardIfFirstPurchase(ctx, key, credit.WasFirstPurchase, event.Email, "")
	if err != nil {
		s.logger.Error("referral reward failed",
			slog.String("code", LogCodeReferralRewardFailure),
			slog.String("record_key", key),
			slog.String("payment_reference", event.PaymentReference),
			slog.String("error", err.Error()),
		)
	}
	result.ReferralRewarded = rewarded
	run.advance(models.PaymentStateReferralChecked)

	run.advance(models.PaymentStateDone)
	return result, nil
}

func (s *PaymentService) logOutcome(run *paymentRun) {
	trace := make([]string, 0, len(run.result.Trace))
	for _, state := range run.result.Trace {
		trace = append(trace, string(state))
	}
	s.logger.Debug("payment event finished",
		slog.String("state", string(run.result.State)),
		slog.String("payment_reference", run.result.PaymentReference),
		slog.Any("trace", trace),
	)
}

// fillBalance reports the current balance for a replayed payment. On lookup
// failure the balance fields stay unset and are left out of the reply.
func (s *PaymentService) fillBalance(ctx context.Context, result *models.PaymentResult, key string) {
	account, err := s.ledger.GetBalance(ctx, key)
	if err != nil {
		s.logger.Warn("failed to load balance for replayed payment",
			slog.String("record_key", key),
			slog.String("payment_reference", result.PaymentReference),
			slog.String("error", err.Error()),
		)
		result.BalanceUnavailable = true
		return
	}
	result.RemainingSeconds = account.RemainingSeconds
	result.TotalPurchasedSeconds = account.TotalPurchasedSeconds
}
