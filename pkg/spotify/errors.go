package spotify

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies the failure modes of the client.
type ErrorKind string

// Error kinds, one per failure class surfaced by the client.
const (
	KindNetwork             ErrorKind = "network"
	KindParse               ErrorKind = "parse"
	KindTokenAuthentication ErrorKind = "token_authentication"
	KindRateLimited         ErrorKind = "rate_limited"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindUnexpected          ErrorKind = "unexpected"
)

// Error represents a failure from the Spotify client.
//
// Every operation returns one of these rather than retrying internally;
// retry and backoff decisions belong to the caller, informed by Kind and
// RetryAfter. Use errors.Is against the package sentinels to branch on the
// failure class, or errors.As to reach the carried detail.
type Error struct {
	Kind       ErrorKind     // Failure class, stable across messages
	Message    string        // Human-readable description
	StatusCode int           // HTTP status for non-success responses, 0 otherwise
	RetryAfter time.Duration // Server-requested delay, set for rate-limited failures
	Err        error         // Underlying cause, if any
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrNetwork             = &Error{Kind: KindNetwork}
	ErrParse               = &Error{Kind: KindParse}
	ErrTokenAuthentication = &Error{Kind: KindTokenAuthentication}
	ErrRateLimited         = &Error{Kind: KindRateLimited}
	ErrInvalidInput        = &Error{Kind: KindInvalidInput}
	ErrUnexpected          = &Error{Kind: KindUnexpected}
)

// Error returns the error message.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("spotify: %s: %v", e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("spotify: %s", e.Message)
	case e.Err != nil:
		return fmt.Sprintf("spotify: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("spotify: %s", e.Kind)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is compares error kinds, letting errors.Is(err, ErrRateLimited) style
// checks match regardless of message or carried detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Temporary reports whether the failure is worth retrying later.
//
// Rate-limited and network failures qualify; authentication, parse, and
// input failures will repeat for the same request.
func (e *Error) Temporary() bool {
	return e.Kind == KindRateLimited || e.Kind == KindNetwork
}

// RetryAfter extracts the server-requested delay from a rate-limited error.
// The second return is false when err is not a rate-limited failure.
func RetryAfter(err error) (time.Duration, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimited {
		return e.RetryAfter, true
	}
	return 0, false
}

// networkError wraps a transport-level failure.
func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "request failed", Err: err}
}

// parseError wraps a decode failure on a response that reported success.
func parseError(err error) *Error {
	return &Error{Kind: KindParse, Message: "malformed response body", Err: err}
}

// invalidInput reports a caller-supplied argument violating a documented
// bound, before any network or cache work happens.
func invalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// unexpectedStatus reports a response status the client has no mapping for.
func unexpectedStatus(status int) *Error {
	return &Error{
		Kind:       KindUnexpected,
		Message:    fmt.Sprintf("unexpected status code %d", status),
		StatusCode: status,
	}
}
