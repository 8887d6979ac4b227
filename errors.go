package coinpayments

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds callers branch on with errors.Is.
var (
	// ErrAuthentication is returned on HTTP 401 responses.
	ErrAuthentication = errors.New("coinpayments: authentication failed")
	// ErrNotFound is returned on HTTP 404 responses.
	ErrNotFound = errors.New("coinpayments: resource not found")
	// ErrRateLimit is returned on HTTP 429 responses.
	ErrRateLimit = errors.New("coinpayments: rate limit exceeded")
	// ErrInsufficientFunds matches API errors whose code reports an
	// insufficient wallet balance.
	ErrInsufficientFunds = errors.New("coinpayments: insufficient funds")
	// ErrNoData is returned when a success response carries neither a
	// payload nor an error.
	ErrNoData = errors.New("coinpayments: no data in response")
)

// APIError is a remote-service failure: a non-2xx status that is not one of
// the dedicated sentinels, or an error object delivered inside a 2xx
// envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    json.RawMessage
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("coinpayments: API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("coinpayments: API error: %s", e.Message)
}

// Is lets errors.Is(err, ErrInsufficientFunds) match the domain error code
// the service uses for underfunded spends.
func (e *APIError) Is(target error) bool {
	return target == ErrInsufficientFunds && e.Code == "insufficient_funds"
}

// NetworkError wraps a transport-level failure (connection, timeout, context
// cancellation). The call never reached a decodable API response.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("coinpayments: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a success response whose body matched neither the
// expected shape nor the envelope shape. Body is a snippet for debugging,
// not for callers to pattern-match on.
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("coinpayments: failed to parse response: %v - response: %s", e.Err, e.Body)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidParametersError reports caller-supplied values rejected before any
// network call is made.
type InvalidParametersError struct {
	Reason string
	Err    error
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("coinpayments: invalid parameters: %s", e.Reason)
}

func (e *InvalidParametersError) Unwrap() error { return e.Err }

func invalidParams(format string, args ...any) *InvalidParametersError {
	return &InvalidParametersError{Reason: fmt.Sprintf(format, args...)}
}
