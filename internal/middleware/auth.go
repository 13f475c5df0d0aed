package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/benx421/interview-ledger/internal/auth"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
)

// TokenVerifier resolves a bearer token to the email it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth is a strict-server middleware guarding the named operations.
// Failures are returned as errors for the response error handler to render.
func BearerAuth(verifier TokenVerifier, operations ...string) strictnethttp.StrictHTTPMiddlewareFunc {
	return func(f strictnethttp.StrictHTTPHandlerFunc, operationID string) strictnethttp.StrictHTTPHandlerFunc {
		if !slices.Contains(operations, operationID) {
			return f
		}

		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				return nil, err
			}

			email, err := verifier.Verify(token)
			if err != nil {
				return nil, err
			}

			return f(WithAccountEmail(ctx, email), w, r, request)
		}
	}
}
