// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Concurrency < 0 || cfg.App.Delay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.HIBP.RequestTimeout < 0 {
		return ErrInvalidHIBPConfigs
	}

	if cfg.HIBP.BaseURL != "" {
		u, err := url.Parse(cfg.HIBP.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidHIBPConfigs
		}
	}

	return nil
}
