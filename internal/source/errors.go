package source

import "errors"

var (
	// ErrSourceUnavailable indicates the credential manager could not be
	// reached or refused authorization. Fatal to the run.
	ErrSourceUnavailable = errors.New("credential source unavailable")

	// ErrMalformedOutput indicates the source produced output that could
	// not be decoded.
	ErrMalformedOutput = errors.New("malformed credential source output")
)
