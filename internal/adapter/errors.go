package adapter

import "errors"

var (
	// ErrRateLimited indicates the breach corpus answered 429. The pipeline
	// treats it as run-stopping rather than record-local.
	ErrRateLimited = errors.New("rate limited by breach corpus")

	// ErrBadPrefix indicates the caller passed a prefix that is not exactly
	// five uppercase hex characters. The offending value is deliberately
	// not included in the error.
	ErrBadPrefix = errors.New("invalid fingerprint prefix")
)
