package domain

import "errors"

// Error taxonomy shared across the pipeline. Adapters and services wrap these
// with context via fmt.Errorf so callers can branch with errors.Is.
var (
	// ErrNotFound: an address or coordinate pair resolves to nothing.
	ErrNotFound = errors.New("not found")
	// ErrNetwork: transport-level failure talking to an external service.
	ErrNetwork = errors.New("network failure")
	// ErrAuth: the routing service rejected or lacked a token.
	ErrAuth = errors.New("authentication rejected")
	// ErrInvalidInput: malformed or insufficient input, e.g. fewer than 2 points.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration: no usable fuel efficiency.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidParameter: fuel cost inputs out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
