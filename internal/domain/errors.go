package domain

import "errors"

// Sentinel errors for the flight price insight domain.
// Handlers map these to HTTP status codes using errors.Is.
var (
	// ErrInvalidRequest indicates that user-supplied input failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataSourceUnavailable indicates that the configured flight data
	// source (e.g. the remote pricing backend) could not be reached.
	ErrDataSourceUnavailable = errors.New("flight data source unavailable")

	// ErrStatsUnavailable indicates that the usage statistics store could
	// not be read or written.
	ErrStatsUnavailable = errors.New("statistics store unavailable")
)
