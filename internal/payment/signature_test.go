package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhook(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := Sign(body, "whsec")

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		want      bool
	}{
		{"valid", body, sig, "whsec", true},
		{"wrong secret", body, sig, "other", false},
		{"body altered by one byte", []byte(`{"event":"payment.captured" }`), sig, "whsec", false},
		{"empty signature", body, "", "whsec", false},
		{"empty secret", body, Sign(body, ""), "", false},
		{"uppercase hex is a mismatch", body, upper(sig), "whsec", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyWebhook(tt.body, tt.signature, tt.secret))
		})
	}
}

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	got := Sign([]byte("what do ya want for nothing?"), "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestVerifyCheckout(t *testing.T) {
	sig := Sign([]byte("order_1|pay_1"), "keysecret")

	assert.True(t, VerifyCheckout("order_1", "pay_1", sig, "keysecret"))
	assert.False(t, VerifyCheckout("order_1", "pay_2", sig, "keysecret"))
	assert.False(t, VerifyCheckout("", "pay_1", sig, "keysecret"))
	assert.False(t, VerifyCheckout("order_1", "pay_1", sig, ""))
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
