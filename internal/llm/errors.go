package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider rejected the call due to rate
// limiting. Retryable after backoff, honoring RetryAfter when set.
type ErrRateLimit struct {
	Err        error
	RetryAfter time.Duration
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates a transport failure or a 5xx from
// the provider. Retryable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider returned something the
// adapter could not use, e.g. an empty completion. Retried once.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the completion was truncated at the
// token cap. Not retryable; the caller should raise MaxTokens.
type ErrMaxTokensExceeded struct {
	Limit int
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("completion truncated at %d tokens", e.Limit)
}
