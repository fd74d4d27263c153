// Package retry re-runs operations that failed for transient reasons with
// exponential backoff.
package retry

import (
	"context"
	"time"

	"storefront/config"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds how often and how fast an operation is retried.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// OnRetry is called before each wait; it may be nil.
	OnRetry func(err error, wait time.Duration)
}

// NewPolicy builds a Policy from the store retry settings.
func NewPolicy(cfg *config.Config) Policy {
	if cfg == nil || cfg.Store == nil {
		return Once()
	}

	return Policy{
		MaxAttempts:     cfg.Store.Retry.MaxAttempts,
		InitialInterval: cfg.Store.Retry.InitialInterval,
		MaxInterval:     cfg.Store.Retry.MaxInterval,
	}
}

// Once is a Policy that never retries.
func Once() Policy {
	return Policy{MaxAttempts: 1}
}

// Do runs op until it succeeds, fails with an error isTransient rejects, the
// attempts run out or ctx is done. The error of the last attempt is returned
// unchanged.
func Do(ctx context.Context, policy Policy, isTransient func(error) bool, op func(ctx context.Context) error) error {
	attempts := max(policy.MaxAttempts, 1)

	exp := backoff.NewExponentialBackOff()
	if policy.InitialInterval > 0 {
		exp.InitialInterval = policy.InitialInterval
	}
	if policy.MaxInterval > 0 {
		exp.MaxInterval = policy.MaxInterval
	}
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	return backoff.RetryNotify(func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}

		return err
	}, b, policy.OnRetry)
}
