package handlers

import (
	"context"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/identity"
	"github.com/benx421/interview-ledger/internal/middleware"
	"github.com/benx421/interview-ledger/internal/service"
)

// GetMyAccount handles GET /api/v1/accounts/me
func (h *Handler) GetMyAccount(
	ctx context.Context,
	request api.GetMyAccountRequestObject,
) (api.GetMyAccountResponseObject, error) {
	key, ok := h.callerKey(ctx)
	if !ok {
		return api.GetMyAccount401JSONResponse{
			UnauthorizedJSONResponse: api.UnauthorizedJSONResponse{
				Error:   api.ErrorCodeUnauthorized,
				Message: "token does not carry a usable email",
			},
		}, nil
	}

	account, err := h.ledger.GetBalance(ctx, key)
	if err != nil {
		if svcErr := extractServiceError(err); svcErr != nil && svcErr.Code == service.ErrCodeAccountNotFound {
			return api.GetMyAccount404JSONResponse{
				NotFoundJSONResponse: api.NotFoundJSONResponse{
					Error:   api.ErrorCodeAccountNotFound,
					Message: "account not found",
				},
			}, nil
		}

		h.logger.Error("failed to load account", "record_key", key, "error", err)
		return api.GetMyAccount500JSONResponse{
			InternalErrorJSONResponse: api.InternalErrorJSONResponse{
				Error:   api.ErrorCodeInternalError,
				Message: "internal error",
			},
		}, nil
	}

	return api.GetMyAccount200JSONResponse(toAccountResponse(account)), nil
}

// CreateReferralCode handles POST /api/v1/accounts/me/referral-code
func (h *Handler) CreateReferralCode(
	ctx context.Context,
	request api.CreateReferralCodeRequestObject,
) (api.CreateReferralCodeResponseObject, error) {
	key, ok := h.callerKey(ctx)
	if !ok {
		return api.CreateReferralCode401JSONResponse{
			UnauthorizedJSONResponse: api.UnauthorizedJSONResponse{
				Error:   api.ErrorCodeUnauthorized,
				Message: "token does not carry a usable email",
			},
		}, nil
	}

	code, err := h.referrals.GetOrCreateReferralCode(ctx, key)
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr != nil && svcErr.Code == service.ErrCodeAccountNotFound {
			return api.CreateReferralCode404JSONResponse{
				NotFoundJSONResponse: api.NotFoundJSONResponse{
					Error:   api.ErrorCodeAccountNotFound,
					Message: "account not found",
				},
			}, nil
		}

		errorCode := api.ErrorCodeInternalError
		if svcErr != nil {
			errorCode = mapServiceErrorToCode(svcErr.Code)
		}
		h.logger.Error("failed to issue referral code", "record_key", key, "error", err)
		return api.CreateReferralCode500JSONResponse{
			InternalErrorJSONResponse: api.InternalErrorJSONResponse{
				Error:   errorCode,
				Message: "could not issue referral code",
			},
		}, nil
	}

	return api.CreateReferralCode200JSONResponse{ReferralCode: code}, nil
}

// callerKey resolves the record key of the authenticated caller.
func (h *Handler) callerKey(ctx context.Context) (string, bool) {
	email, ok := middleware.AccountEmailFromContext(ctx)
	if !ok {
		return "", false
	}

	key, err := identity.Normalize(email)
	if err != nil {
		h.logger.Warn("bearer token email cannot be normalized", "error", err)
		return "", false
	}
	return key, true
}
