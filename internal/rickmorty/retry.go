package rickmorty

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// fetch GETs reqURL into dest, retrying everything except 404s.
//
// Attempt n (0-indexed) that fails is followed by a 2^n second pause, capped
// at MaxBackoff, until RetryAttempts extra attempts have been spent. The last
// cause is returned wrapped in ErrRetriesExhausted. Cancelling ctx stops the
// loop and returns ctx.Err().
func (c *Client) fetch(ctx context.Context, reqURL *url.URL, dest any) error {
	requestID := uuid.NewString()
	endpoint := endpointLabel(reqURL)
	attempts := 0

	err := retry.Do(ctx, c.newBackoff(), func(ctx context.Context) error {
		attempts++
		c.log.Debug("request", "endpoint", endpoint, "attempt", attempts, "request_id", requestID)

		err := c.get(ctx, reqURL, requestID, dest)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotFound) {
			c.log.Debug("not found", "endpoint", endpoint, "request_id", requestID)
			return err
		}
		c.log.Warn("request failed", "endpoint", endpoint, "attempt", attempts, "request_id", requestID, "err", err)
		return retry.RetryableError(err)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return err
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return err
	default:
		c.log.Error("giving up", "endpoint", endpoint, "attempts", attempts, "request_id", requestID, "err", err)
		return fmt.Errorf("%s: %w after %d attempts: %w", endpoint, ErrRetriesExhausted, attempts, err)
	}
}

// backoff builds the per-call schedule: 1s, 2s, 4s, ... bounded by the
// retry budget and optionally capped.
func (c *Client) backoff() retry.Backoff {
	b := retry.NewExponential(firstBackoff)
	if c.cfg.MaxBackoff > 0 {
		b = retry.WithCappedDuration(c.cfg.MaxBackoff, b)
	}
	return retry.WithMaxRetries(uint64(c.cfg.RetryAttempts), b)
}

// Delays returns the pauses a fully failing call would take with the given
// settings. Useful for surfacing the retry budget in the UI.
func Delays(retryAttempts int, maxBackoff time.Duration) []time.Duration {
	if retryAttempts <= 0 {
		return nil
	}
	delays := make([]time.Duration, 0, retryAttempts)
	d := firstBackoff
	for i := 0; i < retryAttempts; i++ {
		if maxBackoff > 0 && d > maxBackoff {
			d = maxBackoff
		}
		delays = append(delays, d)
		if d < maxBackoff || maxBackoff <= 0 {
			d *= 2
		}
	}
	return delays
}

func endpointLabel(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}
