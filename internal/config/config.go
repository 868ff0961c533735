// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-breach-audit application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds pipeline-level settings such as lookup concurrency and the
	// politeness delay between corpus calls.
	App App `envPrefix:"APP_"`

	// HIBP holds settings for the breach corpus endpoint.
	HIBP HIBP `envPrefix:"HIBP_"`

	// Source holds settings for the 1Password CLI credential source.
	Source Source `envPrefix:"SOURCE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds pipeline-level configuration values.
type App struct {
	// Concurrency is the number of breach-corpus lookups allowed in
	// flight at once. 1 means strictly sequential processing.
	// Env: APP_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// Delay is the minimum spacing between lookup starts, keeping the
	// tool polite to the public corpus API (e.g. "100ms").
	// Env: APP_DELAY
	Delay time.Duration `env:"DELAY"`
}

// HIBP holds settings for the breach corpus (HaveIBeenPwned) endpoint.
type HIBP struct {
	// BaseURL is the corpus endpoint base. Empty means the public API
	// (https://api.pwnedpasswords.com).
	// Env: HIBP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent identifies this tool to the corpus API.
	// Env: HIBP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds a single range request (e.g. "15s").
	// Env: HIBP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AddPadding asks the corpus to pad responses with zero-count entries.
	// Env: HIBP_ADD_PADDING
	AddPadding bool `env:"ADD_PADDING"`

	// CachePrefixes enables the in-memory same-run prefix cache.
	// Env: HIBP_CACHE_PREFIXES
	CachePrefixes bool `env:"CACHE_PREFIXES"`
}

// Source holds settings for the 1Password `op` CLI credential source.
type Source struct {
	// Binary is the op executable name or path.
	// Env: SOURCE_OP_BINARY
	Binary string `env:"OP_BINARY"`

	// Categories filters the op item listing (e.g. "Login").
	// Env: SOURCE_OP_CATEGORIES
	Categories string `env:"OP_CATEGORIES"`

	// Vault restricts the listing to a single vault. Empty means all.
	// Env: SOURCE_OP_VAULT
	Vault string `env:"OP_VAULT"`
}

// GetConfig builds and validates the application configuration by merging
// environment variables, command-line flags, and an optional JSON file.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building configs: %w", err)
	}

	return cfg, nil
}
