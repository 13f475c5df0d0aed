package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	proxies := []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("fd00::/8"),
	}

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trusted    []netip.Prefix
		expected   string
	}{
		{
			name:       "remote address",
			remoteAddr: "198.51.100.7:51234",
			expected:   "198.51.100.7",
		},
		{
			name:       "spoofed forwarded header ignored by default",
			remoteAddr: "203.0.113.9:51234",
			headers:    map[string]string{"X-Forwarded-For": "1.1.1.1", "X-Real-IP": "2.2.2.2"},
			expected:   "203.0.113.9",
		},
		{
			name:       "headers from an untrusted peer are ignored",
			remoteAddr: "203.0.113.9:51234",
			headers:    map[string]string{"X-Forwarded-For": "1.1.1.1"},
			trusted:    proxies,
			expected:   "203.0.113.9",
		},
		{
			name:       "rightmost untrusted hop behind a trusted proxy",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "1.1.1.1, 203.0.113.9, 10.0.0.5"},
			trusted:    proxies,
			expected:   "203.0.113.9",
		},
		{
			name:       "client-supplied prefix cannot move the gated address",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "2.2.2.2, 198.51.100.7"},
			trusted:    proxies,
			expected:   "198.51.100.7",
		},
		{
			name:       "real ip from a trusted proxy",
			remoteAddr: "[fd00::1]:443",
			headers:    map[string]string{"X-Real-IP": "2001:db8::1"},
			trusted:    proxies,
			expected:   "2001:db8::1",
		},
		{
			name:       "garbage forwarded value falls back to remote address",
			remoteAddr: "10.0.0.2:443",
			headers:    map[string]string{"X-Forwarded-For": "unknown"},
			trusted:    proxies,
			expected:   "10.0.0.2",
		},
		{
			name:       "unparseable remote address",
			remoteAddr: "pipe",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := ClientIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = ClientIPFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/eligibility", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClientIP_FreshForwardedValuesShareOneNetwork(t *testing.T) {
	var seen []string
	handler := ClientIP(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, ClientIPFromContext(r.Context()))
	}))

	for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/signups", nil)
		req.RemoteAddr = "203.0.113.9:40000"
		req.Header.Set("X-Forwarded-For", spoofed)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, []string{"203.0.113.9", "203.0.113.9", "203.0.113.9"}, seen)
}
