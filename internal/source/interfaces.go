// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source enumerates raw login records from an external credential
// manager. The package ships a 1Password implementation built on the `op`
// CLI ([NewOnePasswordSource]); the subprocess boundary is abstracted behind
// a small runner interface so tests never spawn processes.
//
// The source is acquired once at startup and used read-only; it never
// reauthorizes mid-run.
package source

import (
	"context"

	"github.com/MKhiriev/go-breach-audit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_source_mock.go -package=mock

// CredentialSource enumerates login records from an external credential
// manager.
type CredentialSource interface {
	// Logins returns every login record the source can enumerate, in the
	// source's own order. Individual malformed or unfetchable items are
	// skipped with a warning; failing to reach or authorize the source at
	// all fails the whole call.
	Logins(ctx context.Context) ([]models.LoginRecord, error)
}
