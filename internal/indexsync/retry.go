package indexsync

import "time"

const (
	// DefaultMaxRetries is how many times a task is retried after its first attempt.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the fixed wait before each retry.
	DefaultRetryDelay = 60 * time.Second
)

// RetryPolicy decides whether a failed task runs again and when.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, Delay: DefaultRetryDelay}
}

// ShouldRetry reports whether a task that has already failed `attempts`
// times (not counting the failure being handled) gets another run.
func (p RetryPolicy) ShouldRetry(attempts int) bool {
	return attempts < p.MaxRetries
}

// NextDelay is the wait before the next run. The delay is fixed.
func (p RetryPolicy) NextDelay(int) time.Duration {
	if p.Delay < 0 {
		return 0
	}
	return p.Delay
}
