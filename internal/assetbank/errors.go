package assetbank

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration errors surfaced by New. These are construction-time
// failures and are never retried.
var (
	ErrMissingHost  = errors.New("assetbank: missing api host")
	ErrMissingToken = errors.New("assetbank: missing access token")
)

// APIError is a non-2xx response from Asset Bank other than 429.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("assetbank: api error %d for %s", e.StatusCode, e.URL)
}

// RateLimitError is an HTTP 429 from Asset Bank. It is always treated
// as transient by the retry loop.
type RateLimitError struct {
	URL string
}

func (e *RateLimitError) Error() string {
	return "assetbank: rate limited at " + e.URL
}

// retryable classifies a failed attempt. Client errors in the 400 range
// are terminal, except 408; 429 arrives as RateLimitError and retries.
// Server errors and network-level failures are transient.
func retryable(err error) bool {
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s := apiErr.StatusCode
		if s >= 400 && s < 500 && s != http.StatusRequestTimeout {
			return false
		}
		return true
	}

	return true
}
