package middleware

import "context"

type contextKey int

const (
	clientIPKey contextKey = iota
	accountEmailKey
)

// WithClientIP returns a copy of ctx carrying the caller's IP address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromContext returns the IP stored by ClientIP, or "".
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// WithAccountEmail returns a copy of ctx carrying the authenticated email.
func WithAccountEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, accountEmailKey, email)
}

// AccountEmailFromContext returns the email stored by BearerAuth.
func AccountEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(accountEmailKey).(string)
	return email, ok && email != ""
}
