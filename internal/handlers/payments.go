package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/benx421/interview-ledger/internal/api"
	"github.com/benx421/interview-ledger/internal/models"
	"github.com/benx421/interview-ledger/internal/payment"
	"github.com/benx421/interview-ledger/internal/service"
)

// maxWebhookBodyBytes bounds a gateway webhook delivery.
const maxWebhookBodyBytes = 1 << 20

// webhookAck is the body returned to the gateway.
type webhookAck struct {
	Success bool          `json:"success"`
	State   string        `json:"state,omitempty"`
	Error   api.ErrorCode `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
}

// ConfirmPayment handles POST /api/v1/payments/confirm
func (h *Handler) ConfirmPayment(
	ctx context.Context,
	request api.ConfirmPaymentRequestObject,
) (api.ConfirmPaymentResponseObject, error) {
	body := request.Body

	result, err := h.payments.ProcessCheckout(ctx, models.CheckoutConfirmation{
		Email:            body.Email,
		PackageLabel:     derefString(body.PackageLabel),
		PaymentReference: body.PaymentReference,
		OrderID:          body.OrderId,
		Signature:        body.Signature,
		Plan:             derefString(body.Plan),
		Amount:           body.Amount,
	})
	if err != nil {
		return h.handleConfirmPaymentError(err)
	}

	return api.ConfirmPayment200JSONResponse(toPaymentResultResponse(result)), nil
}

// handleConfirmPaymentError maps service errors to appropriate HTTP responses
func (h *Handler) handleConfirmPaymentError(err error) (api.ConfirmPaymentResponseObject, error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error during payment confirmation", "error", err)
		return api.ConfirmPayment500JSONResponse{
			InternalErrorJSONResponse: api.InternalErrorJSONResponse{
				Error:   api.ErrorCodeInternalError,
				Message: "internal error",
			},
		}, nil
	}

	errorCode := mapServiceErrorToCode(svcErr.Code)

	switch {
	case svcErr.Code == service.ErrCodeAccountNotFound:
		return api.ConfirmPayment404JSONResponse{
			NotFoundJSONResponse: api.NotFoundJSONResponse{
				Error:   errorCode,
				Message: svcErr.Message,
			},
		}, nil
	case isClientError(svcErr.Code):
		return api.ConfirmPayment400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse{
				Error:   errorCode,
				Message: svcErr.Message,
			},
		}, nil
	}

	return api.ConfirmPayment500JSONResponse{
		InternalErrorJSONResponse: api.InternalErrorJSONResponse{
			Error:   errorCode,
			Message: "internal error",
		},
	}, nil
}

// PaymentWebhook handles POST /api/v1/payments/webhook. It sits outside the
// strict server so the signature can be checked against the exact body bytes.
//
// A payment for an unknown account is acknowledged with success=false: it is
// logged for manual reconciliation and a gateway retry cannot fix it.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, api.ErrorResponse{
				Error:   api.ErrorCodeInvalidRequest,
				Message: "webhook body too large",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{
			Error:   api.ErrorCodeInvalidRequest,
			Message: "could not read webhook body",
		})
		return
	}

	result, err := h.payments.ProcessWebhook(r.Context(), rawBody, r.Header.Get(payment.SignatureHeader))
	if err != nil {
		svcErr := extractServiceError(err)
		switch {
		case svcErr == nil:
			h.logger.Error("unexpected error during webhook processing", "error", err)
		case isClientError(svcErr.Code):
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{
				Error:   mapServiceErrorToCode(svcErr.Code),
				Message: svcErr.Message,
			})
			return
		case svcErr.Code == service.ErrCodeAccountNotFound:
			writeJSON(w, http.StatusOK, webhookAck{
				Success: false,
				State:   string(models.PaymentStateRejected),
				Error:   api.ErrorCodeAccountNotFound,
				Message: svcErr.Message,
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{
			Error:   api.ErrorCodeInternalError,
			Message: "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, webhookAck{
		Success: true,
		State:   string(result.State),
	})
}
