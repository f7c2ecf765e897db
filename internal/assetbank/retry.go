package assetbank

import (
	"context"
	"math"
	"time"
)

const (
	// maxRetries is the retry ceiling after the initial attempt.
	maxRetries = 3

	// backoffFactor is the per-attempt delay multiplier.
	backoffFactor = 1.66
)

// withRetry runs fn up to maxRetries+1 times with exponential backoff.
// A terminal failure (4xx other than 408/429) aborts immediately;
// everything else retries until the ceiling.
func (c *Client) withRetry(ctx context.Context, target string, fn func() ([]byte, error)) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := fn()
		if err == nil {
			return body, nil
		}

		if attempt >= maxRetries || !retryable(err) {
			return nil, err
		}

		delay := time.Duration(float64(c.backoffBase) * math.Pow(backoffFactor, float64(attempt)))
		c.logger.Debug("retrying request",
			"url", target,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
