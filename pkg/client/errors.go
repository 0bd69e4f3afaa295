package client

import (
	"errors"
	"fmt"
)

// ErrEmptyGasKey is returned by New when the gas key is empty or
// whitespace-only. Raised at construction, never during a call.
var ErrEmptyGasKey = errors.New("aethokit: gas key is empty")

// Call failure kinds. Every call error is an *APIError whose Kind is one of
// these sentinels, so callers can classify with errors.Is:
//
//	if errors.Is(err, client.ErrTimeout) { ... }
var (
	// ErrEmptyTx is returned by SponsorTx for an empty serialized
	// transaction, before any network I/O.
	ErrEmptyTx = errors.New("aethokit: serialized transaction is empty")

	// ErrTransport covers connection, DNS, and TLS failures, and non-2xx
	// responses whose body carries no decodable relay error.
	ErrTransport = errors.New("aethokit: transport failure")

	// ErrTimeout is returned when a call exceeds the configured timeouts.
	ErrTimeout = errors.New("aethokit: request timed out")

	// ErrCanceled is returned when the caller's context is cancelled before
	// the exchange completes.
	ErrCanceled = errors.New("aethokit: request canceled")

	// ErrRelay is returned when the relay answers with a non-2xx status and
	// a decodable error body; the APIError carries the relay's code and
	// message.
	ErrRelay = errors.New("aethokit: relay rejected request")

	// ErrMalformedResponse is returned when a 2xx body does not match the
	// expected shape; the APIError names the offending field.
	ErrMalformedResponse = errors.New("aethokit: malformed relay response")
)

// APIError describes why a call produced no result.
//
// Kind is always one of the sentinel errors above. StatusCode is set whenever
// an HTTP response was received. Code and Message carry the relay's
// machine-readable code and human-readable message when Kind is ErrRelay.
// Field names the missing or mismatched response field when Kind is
// ErrMalformedResponse.
type APIError struct {
	Kind       error
	StatusCode int
	Code       string
	Message    string
	Field      string
	cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case ErrRelay:
		return fmt.Sprintf("%v: status %d code %s: %s", e.Kind, e.StatusCode, e.Code, e.Message)
	case ErrMalformedResponse:
		if e.Field != "" {
			return fmt.Sprintf("%v: missing or invalid field %q", e.Kind, e.Field)
		}
	}
	if e.cause != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.cause)
	}
	if e.Message != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return e.Kind.Error()
}

// Is reports whether target is this error's Kind, making the sentinels above
// work through errors.Is.
func (e *APIError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}
