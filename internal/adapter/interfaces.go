// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the external
// breach corpus (HaveIBeenPwned pwned-passwords range API).
//
// The primary abstraction is [BreachClient], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHIBPClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-breach-audit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/breach_client_mock.go -package=mock

// BreachClient retrieves breach-corpus candidates for a fingerprint prefix.
type BreachClient interface {
	// Lookup fetches every (remainder, count) pair whose hash shares the
	// given 5-character uppercase hex prefix. An empty set is a valid,
	// non-error outcome meaning the corpus holds no entry for the prefix.
	// A returned error means the breach status could not be determined and
	// must never be treated as "not breached".
	Lookup(ctx context.Context, prefix string) (models.CandidateSet, error)
}
