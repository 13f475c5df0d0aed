package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/benx421/interview-ledger/internal/models"
)

// EventPaymentCaptured is the only webhook event that credits time.
const EventPaymentCaptured = "payment.captured"

// WebhookEvent is the subset of the gateway webhook envelope the ledger reads.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity Entity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Entity is a gateway payment as sent in webhooks and returned by the REST API.
type Entity struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Notes    Notes  `json:"notes"`
	Amount   int64  `json:"amount"`
}

// StatusCaptured marks a payment whose funds have been settled to the merchant.
const StatusCaptured = "captured"

// IsCaptured reports whether the payment has been captured.
func (e *Entity) IsCaptured() bool {
	return e.Status == StatusCaptured
}

// PaymentEvent converts the payment to the gateway-neutral form.
func (e *Entity) PaymentEvent() models.PaymentEvent {
	return models.PaymentEvent{
		Email:            strings.TrimSpace(e.Notes.Email),
		PaymentReference: e.ID,
		PackageLabel:     e.Notes.PackageLabel,
		Plan:             e.Notes.Plan,
		Amount:           e.Amount,
	}
}

// Notes are the merchant key/values attached at checkout.
type Notes struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Plan         string `json:"plan"`
	PackageLabel string `json:"package_label"`
}

// UnmarshalJSON accepts the empty array the gateway sends when no notes were set.
func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		*n = Notes{}
		return nil
	}

	type plain Notes
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*n = Notes(p)
	return nil
}

// ParseWebhook decodes a raw webhook body.
func ParseWebhook(rawBody []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("invalid webhook body: %w", err)
	}
	return &event, nil
}

// IsCapture reports whether the event is a captured payment.
func (e *WebhookEvent) IsCapture() bool {
	return e.Event == EventPaymentCaptured
}

// PaymentEvent converts the envelope to the gateway-neutral form.
func (e *WebhookEvent) PaymentEvent() models.PaymentEvent {
	return e.Payload.Payment.Entity.PaymentEvent()
}
