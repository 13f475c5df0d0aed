package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/benx421/interview-ledger/internal/identity"
	"github.com/benx421/interview-ledger/internal/models"
)

// SignupService runs the gated account creation flow: normalize the email,
// consult the signup gate, open the ledger and attribute any referral.
type SignupService struct {
	gate      Gatekeeper
	ledger    Ledger
	referrals ReferralEngine
	identity  IdentityRemover
	logger    *slog.Logger
}

// NewSignupService creates a new SignupService
func NewSignupService(gate Gatekeeper, ledger Ledger, referrals ReferralEngine, remover IdentityRemover, logger *slog.Logger) *SignupService {
	return &SignupService{
		gate:      gate,
		ledger:    ledger,
		referrals: referrals,
		identity:  remover,
		logger:    logger,
	}
}

// Signup creates an account for req. An email that already has an account is
// reported with ErrCodeAccountExists without consulting the gate. When the
// gate rejects a third-party signup the upstream identity is deleted.
func (s *SignupService) Signup(ctx context.Context, req models.SignupRequest) (*models.Account, error) {
	email, err := identity.CleanEmail(req.Email)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidEmail,
			Message: "email address is not valid",
			Err:     err,
		}
	}
	key, err := identity.Normalize(email)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidEmail,
			Message: "email address is not valid",
			Err:     err,
		}
	}

	fingerprint := strings.TrimSpace(req.DeviceFingerprint)
	if fingerprint == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "device fingerprint is required",
		}
	}

	if _, err := s.ledger.GetBalance(ctx, key); err == nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountExists,
			Message: "an account already exists for this email",
		}
	} else if !HasCode(err, ErrCodeAccountNotFound) {
		return nil, err
	}

	verdict := s.gate.CheckEligibility(ctx, fingerprint, req.IPAddress)
	if !verdict.Allowed {
		s.logger.Info("signup rejected by gate",
			slog.String("record_key", key),
			slog.String("reason", verdict.Reason),
			slog.String("provider", req.Provider),
		)
		s.rollbackIdentity(ctx, req)
		return nil, &ServiceError{
			Code:    ErrCodeSignupRejected,
			Message: verdict.Reason,
		}
	}

	account, err := s.ledger.CreateAccount(ctx, key, email, strings.TrimSpace(req.DisplayName), models.DeviceInfo{
		Fingerprint: fingerprint,
		IPAddress:   req.IPAddress,
	})
	if err != nil {
		return nil, err
	}

	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		attributed, err := s.referrals.AttributeSignup(ctx, key, code)
		if err != nil {
			s.logger.Warn("referral attribution failed",
				slog.String("record_key", key),
				slog.String("error", err.Error()),
			)
			return account, nil
		}
		if attributed {
			if refreshed, err := s.ledger.GetBalance(ctx, key); err == nil {
				return refreshed, nil
			}
		}
	}

	return account, nil
}

// rollbackIdentity deletes the identity a third-party provider created before
// the gate ran. Failures are logged only.
func (s *SignupService) rollbackIdentity(ctx context.Context, req models.SignupRequest) {
	if !identity.IsThirdParty(req.Provider) || req.IDToken == "" {
		return
	}

	if err := s.identity.DeleteIdentity(ctx, req.IDToken); err != nil {
		s.logger.Error("failed to delete rejected identity",
			slog.String("provider", req.Provider),
			slog.String("error", err.Error()),
		)
	}
}
