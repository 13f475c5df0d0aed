// Package handlers implements HTTP handlers for the ledger API.
package handlers

import (
	"log/slog"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	registrar     service.Registrar
	gate          service.Gatekeeper
	ledger        service.Ledger
	referrals     service.ReferralEngine
	payments      service.PaymentProcessor
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	registrar service.Registrar,
	gate service.Gatekeeper,
	ledger service.Ledger,
	referrals service.ReferralEngine,
	payments service.PaymentProcessor,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registrar:     registrar,
		gate:          gate,
		ledger:        ledger,
		referrals:     referrals,
		payments:      payments,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
