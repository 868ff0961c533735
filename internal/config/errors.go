package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid pipeline settings
	// (for example, a negative concurrency or delay).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidHIBPConfigs indicates invalid breach corpus settings
	// (for example, a base URL without scheme or host).
	ErrInvalidHIBPConfigs = errors.New("invalid hibp configuration")
)
