// Package payment verifies and decodes payment gateway callbacks.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the webhook body HMAC.
const SignatureHeader = "X-Razorpay-Signature"

// Sign returns the hex HMAC-SHA256 of payload under secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload) //nolint:errcheck // hash writes never fail
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhook checks signature against the exact raw request body.
func VerifyWebhook(rawBody []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(rawBody, secret)), []byte(signature))
}

// VerifyCheckout checks the signature returned to the browser by hosted checkout,
// computed over "order_id|payment_id" with the API key secret.
func VerifyCheckout(orderID, paymentID, signature, secret string) bool {
	if secret == "" || signature == "" || orderID == "" || paymentID == "" {
		return false
	}
	return hmac.Equal([]byte(Sign([]byte(orderID+"|"+paymentID), secret)), []byte(signature))
}
