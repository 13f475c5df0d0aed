package service

import (
	"context"
	"time"

	"github.com/benx421/interview-ledger/internal/repository"
	"github.com/sethvargo/go-retry"
)

// withRetry reruns fn while it fails with a serialization failure or deadlock.
// Any other error is returned on the first attempt.
func withRetry(ctx context.Context, maxRetries int, base time.Duration, fn func(ctx context.Context) error) error {
	if base <= 0 {
		base = 10 * time.Millisecond
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := retry.WithMaxRetries(uint64(maxRetries), retry.NewExponential(base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && repository.IsWriteConflict(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
