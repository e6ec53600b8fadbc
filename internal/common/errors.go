// Package common defines shared sentinel errors used across homesense
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")

	// Validation errors.
	ErrorInvalidRequest = errors.New("invalid request")

	// Third-party API failures (weather lookups, AI completions etc).
	ErrorUpstream        = errors.New("upstream error")
	ErrorUpstreamTimeout = errors.New("upstream timeout")
)
