package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/benx421/interview-ledger/internal/api"
)

// healthPingTimeout bounds the database round trip of a health probe.
const healthPingTimeout = 2 * time.Second

// GetHealth handles GET /health. Only the ledger database is probed; the
// identity provider is optional and its outages only affect signup rollback.
func (h *Handler) GetHealth(
	ctx context.Context,
	_ api.GetHealthRequestObject,
) (api.GetHealthResponseObject, error) {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("ledger store unreachable",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return api.GetHealth503JSONResponse{Status: api.Unhealthy}, nil
	}

	return api.GetHealth200JSONResponse{Status: api.Healthy}, nil
}
