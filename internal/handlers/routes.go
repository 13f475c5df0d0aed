package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/auth"
	"github.com/benx421/interview-ledger/internal/config"
	"github.com/benx421/interview-ledger/internal/db"
	"github.com/benx421/interview-ledger/internal/identity"
	"github.com/benx421/interview-ledger/internal/middleware"
	"github.com/benx421/interview-ledger/internal/payment"
	"github.com/benx421/interview-ledger/internal/repository"
	"github.com/benx421/interview-ledger/internal/service"
)

// WebhookPath is where the payment gateway delivers signed events.
const WebhookPath = "/api/v1/payments/webhook"

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	gateService := service.NewGateService(database, logger)
	ledgerService := service.NewLedgerService(database, cfg.Ledger, logger)
	referralService := service.NewReferralService(database, cfg.Ledger, logger)
	identityClient := identity.NewClient(&cfg.Identity, logger)
	signupService := service.NewSignupService(gateService, ledgerService, referralService, identityClient, logger)
	gatewayClient := payment.NewClient(&cfg.Payment)
	paymentService := service.NewPaymentService(ledgerService, referralService, gatewayClient, cfg.Payment, logger)

	handler := NewHandler(signupService, gateService, ledgerService, referralService, paymentService, database, logger)

	verifier := auth.NewVerifier(cfg.Auth.TokenSecret)
	strictHandler := api.NewStrictHandlerWithOptions(
		handler,
		[]api.StrictMiddlewareFunc{
			middleware.BearerAuth(verifier, "GetMyAccount", "CreateReferralCode"),
		},
		api.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  RequestErrorHandler(logger),
			ResponseErrorHandlerFunc: ResponseErrorHandler(logger),
		},
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerFromMux(strictHandler, mux)
	mux.HandleFunc("POST "+WebhookPath, handler.PaymentWebhook)

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	finalHandler = middleware.ClientIP(cfg.Server.TrustedProxies)(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler
}
