package handlers

import (
	"context"
	"strings"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/middleware"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/service"
)

// CreateSignup handles POST /api/v1/signups
func (h *Handler) CreateSignup(
	ctx context.Context,
	request api.CreateSignupRequestObject,
) (api.CreateSignupResponseObject, error) {
	body := request.Body

	req := models.SignupRequest{
		Email:             body.Email,
		DisplayName:       strings.TrimSpace(derefString(body.DisplayName)),
		DeviceFingerprint: strings.TrimSpace(body.DeviceFingerprint),
		IPAddress:         middleware.ClientIPFromContext(ctx),
		ReferralCode:      derefString(body.ReferralCode),
		IDToken:           derefString(body.IdToken),
	}
	if body.Provider != nil {
		req.Provider = string(*body.Provider)
	}

	account, err := h.registrar.Signup(ctx, req)
	if err != nil {
		return h.handleSignupError(err)
	}

	return api.CreateSignup201JSONResponse(toAccountResponse(account)), nil
}

// handleSignupError maps service errors to appropriate HTTP responses
func (h *Handler) handleSignupError(err error) (api.CreateSignupResponseObject, error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error during signup", "error", err)
		return api.CreateSignup500JSONResponse{
			InternalErrorJSONResponse: api.InternalErrorJSONResponse{
				Error:   api.ErrorCodeInternalError,
				Message: "internal error",
			},
		}, nil
	}

	errorCode := mapServiceErrorToCode(svcErr.Code)

	switch {
	case svcErr.Code == service.ErrCodeSignupRejected:
		return api.CreateSignup403JSONResponse{
			ForbiddenJSONResponse: api.ForbiddenJSONResponse{
				Error:   errorCode,
				Message: svcErr.Message,
			},
		}, nil
	case svcErr.Code == service.ErrCodeAccountExists:
		return api.CreateSignup409JSONResponse{
			ConflictJSONResponse: api.ConflictJSONResponse{
				Error:   errorCode,
				Message: svcErr.Message,
			},
		}, nil
	case isClientError(svcErr.Code):
		return api.CreateSignup400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse{
				Error:   errorCode,
				Message: svcErr.Message,
			},
		}, nil
	}

	h.logger.Error("signup failed", "code", svcErr.Code, "error", err)
	return api.CreateSignup500JSONResponse{
		InternalErrorJSONResponse: api.InternalErrorJSONResponse{
			Error:   errorCode,
			Message: "internal error",
		},
	}, nil
}

// CheckEligibility handles GET /api/v1/eligibility
func (h *Handler) CheckEligibility(
	ctx context.Context,
	request api.CheckEligibilityRequestObject,
) (api.CheckEligibilityResponseObject, error) {
	fingerprint := strings.TrimSpace(request.Params.DeviceFingerprint)
	if fingerprint == "" {
		return api.CheckEligibility400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse{
				Error:   api.ErrorCodeInvalidRequest,
				Message: "device fingerprint is required",
			},
		}, nil
	}

	verdict := h.gate.CheckEligibility(ctx, fingerprint, middleware.ClientIPFromContext(ctx))

	return api.CheckEligibility200JSONResponse{
		Allowed: verdict.Allowed,
		Reason:  optionalString(verdict.Reason),
	}, nil
}
