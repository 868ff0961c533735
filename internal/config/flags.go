package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-concurrency number of corpus lookups in flight at once
//	-delay politeness delay between corpus lookups (e.g., "100ms")
//	-hibp-url breach corpus base URL
//	-user-agent User-Agent header sent to the corpus
//	-request-timeout per-request timeout (e.g., "15s")
//	-padding request padded corpus responses
//	-cache cache corpus responses by prefix within this run
//	-op-binary path to the 1Password CLI
//	-categories op item categories to audit
//	-vault restrict the audit to one vault
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var concurrency int
	var delay time.Duration
	var hibpURL string
	var userAgent string
	var requestTimeout time.Duration
	var addPadding bool
	var cachePrefixes bool
	var opBinary string
	var categories string
	var vault string
	var jsonConfigPath string

	flag.IntVar(&concurrency, "concurrency", 1, "Corpus lookups in flight at once")
	flag.DurationVar(&delay, "delay", 100*time.Millisecond, "Delay between corpus lookups (e.g., 100ms)")
	flag.StringVar(&hibpURL, "hibp-url", "", "Breach corpus base URL")
	flag.StringVar(&userAgent, "user-agent", "", "User-Agent sent to the corpus")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Corpus request timeout (e.g., 15s)")
	flag.BoolVar(&addPadding, "padding", false, "Request padded corpus responses")
	flag.BoolVar(&cachePrefixes, "cache", false, "Cache corpus responses by prefix within this run")
	flag.StringVar(&opBinary, "op-binary", "", "Path to the 1Password CLI")
	flag.StringVar(&categories, "categories", "", "op item categories to audit")
	flag.StringVar(&vault, "vault", "", "Restrict the audit to one vault")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Concurrency: concurrency,
			Delay:       delay,
		},
		HIBP: HIBP{
			BaseURL:        hibpURL,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
			AddPadding:     addPadding,
			CachePrefixes:  cachePrefixes,
		},
		Source: Source{
			Binary:     opBinary,
			Categories: categories,
			Vault:      vault,
		},
		JSONFilePath: jsonConfigPath,
	}
}
