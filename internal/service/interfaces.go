// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the breach-checking pipeline: it drives the
// credential source, fingerprints each password, queries the breach corpus
// through the adapter, resolves matches locally, and aggregates the ordered
// result list and run summary.
package service

import (
	"context"

	"github.com/MKhiriev/go-breach-audit/models"
)

// AuditService runs one full breach audit over the configured credential
// source.
type AuditService interface {
	// Run enumerates login records, checks every record with a non-empty
	// password against the breach corpus, and returns the breached records
	// in original source order together with the run summary.
	//
	// Per-record lookup failures are logged and excluded from the result
	// while still counting toward Summary.TotalChecked. A rate-limited
	// corpus stops the remaining lookups but still yields the results
	// accumulated so far. Source enumeration failures are fatal and
	// returned as an error.
	Run(ctx context.Context) ([]models.BreachResult, models.Summary, error)
}
