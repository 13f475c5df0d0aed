package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/auth"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/service"
)

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidSignature:
		return api.ErrorCodeInvalidSignature
	case service.ErrCodeMissingEmail:
		return api.ErrorCodeMissingEmail
	case service.ErrCodeInvalidEmail:
		return api.ErrorCodeInvalidEmail
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeInvalidRequest:
		return api.ErrorCodeInvalidRequest
	case service.ErrCodeAccountNotFound:
		return api.ErrorCodeAccountNotFound
	case service.ErrCodeAccountExists:
		return api.ErrorCodeAccountExists
	case service.ErrCodeSignupRejected:
		return api.ErrorCodeSignupRejected
	case service.ErrCodeReferralCodeUnavailable:
		return api.ErrorCodeReferralCodeUnavailable
	case service.ErrCodeWriteConflict:
		return api.ErrorCodeWriteConflict
	default:
		return api.ErrorCodeInternalError
	}
}

// isClientError reports whether code is caused by the request itself.
func isClientError(code string) bool {
	switch code {
	case service.ErrCodeInvalidSignature,
		service.ErrCodeMissingEmail,
		service.ErrCodeInvalidEmail,
		service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidRequest:
		return true
	}
	return false
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func toAccountResponse(account *models.Account) api.AccountResponse {
	history := make([]api.PaymentEntry, 0, len(account.PaymentHistory))
	for _, entry := range account.PaymentHistory {
		history = append(history, api.PaymentEntry{
			Date:             entry.Date,
			Amount:           entry.Amount,
			Seconds:          entry.Seconds,
			PackageLabel:     entry.PackageLabel,
			PaymentReference: entry.PaymentReference,
			Plan:             optionalString(entry.Plan),
		})
	}

	referrals := make([]api.ReferralEntry, 0, len(account.Referrals))
	for _, entry := range account.Referrals {
		referrals = append(referrals, api.ReferralEntry{
			Date:          entry.Date,
			ReferredEmail: entry.ReferredEmail,
			ReferredName:  entry.ReferredName,
			RewardSeconds: entry.RewardSeconds,
		})
	}

	return api.AccountResponse{
		Email:                 account.Email,
		DisplayName:           optionalString(account.DisplayName),
		RemainingSeconds:      account.RemainingSeconds,
		TotalPurchasedSeconds: account.TotalPurchasedSeconds,
		TotalReferrals:        account.TotalReferrals,
		ReferralCode:          account.ReferralCode,
		ReferredBy:            account.ReferredBy,
		CreatedAt:             account.CreatedAt,
		LastUpdated:           account.LastUpdated,
		PaymentHistory:        history,
		Referrals:             referrals,
	}
}

func toPaymentResultResponse(result *models.PaymentResult) api.PaymentResultResponse {
	resp := api.PaymentResultResponse{
		Success:          true,
		State:            string(result.State),
		PaymentReference: result.PaymentReference,
		Duplicate:        result.Duplicate,
	}
	if result.State == models.PaymentStateIgnored {
		return resp
	}

	if !result.BalanceUnavailable {
		resp.RemainingSeconds = &result.RemainingSeconds
		resp.TotalPurchasedSeconds = &result.TotalPurchasedSeconds
	}
	if !result.Duplicate {
		resp.GrantedSeconds = &result.GrantedSeconds
		resp.ReferralRewarded = &result.ReferralRewarded
	}
	return resp
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RequestErrorHandler renders body and parameter binding failures as JSON.
func RequestErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Debug("rejected malformed request", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{
			Error:   api.ErrorCodeInvalidRequest,
			Message: err.Error(),
		})
	}
}

// ResponseErrorHandler renders errors returned by strict handlers and
// middleware. Bearer token failures become 401, everything else 500.
func ResponseErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, auth.ErrMissingToken) ||
			errors.Is(err, auth.ErrInvalidToken) ||
			errors.Is(err, auth.ErrTokenExpired) {
			writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{
				Error:   api.ErrorCodeUnauthorized,
				Message: err.Error(),
			})
			return
		}

		logger.Error("unhandled response error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{
			Error:   api.ErrorCodeInternalError,
			Message: "internal error",
		})
	}
}
