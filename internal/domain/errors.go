// Package domain contains the core entities and rules for the travel search
// system: query models, normalized result records, and the upstream provider
// port. These types are upstream-agnostic and form the foundation upon which
// all other components are built.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the travel search domain.
var (
	// ErrInvalidQuery indicates that query validation failed.
	// This is the only error class that crosses the service boundary;
	// everything else degrades to an empty-but-explained result.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUpstreamUnavailable indicates the travel-data upstream could not
	// be reached or returned an unusable response.
	ErrUpstreamUnavailable = errors.New("travel data upstream unavailable")

	// ErrRateLimited indicates the upstream call budget was exhausted and
	// no live fetch was attempted.
	ErrRateLimited = errors.New("upstream call budget exhausted")
)

// UpstreamError wraps a failure from the travel-data API with the operation
// that failed and the HTTP status code (0 when the request never completed).
type UpstreamError struct {
	// Op is the upstream operation that failed (e.g., "flight-offers")
	Op string

	// StatusCode is the HTTP status returned by the upstream, if any
	StatusCode int

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an UpstreamError for the given operation.
func NewUpstreamError(op string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}
