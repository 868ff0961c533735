package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{HIBP: HIBP{BaseURL: "https://corpus.example.com"}},
		&StructuredConfig{Source: Source{Binary: "/usr/local/bin/op"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://corpus.example.com", cfg.HIBP.BaseURL)
	assert.Equal(t, "/usr/local/bin/op", cfg.Source.Binary)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a field set by an
// earlier source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Concurrency: 4}},
		&StructuredConfig{App: App{Concurrency: 16, Delay: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.App.Concurrency)
	assert.Equal(t, time.Second, cfg.App.Delay)
}

// TestBuild_ValidationFailure verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Concurrency: -1}})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"hibp": map[string]any{
			"base_url":        "https://json.example.com",
			"request_timeout": "15s",
		},
		"app": map[string]any{
			"delay": "250ms",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example.com", cfg.HIBP.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.HIBP.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.App.Delay)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// earlier source specified a file path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestWithJSON_MissingFileIsAnError verifies that a dangling config path
// surfaces as a builder error.
func TestWithJSON_MissingFileIsAnError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := &StructuredConfig{HIBP: HIBP{BaseURL: "not-a-url"}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidHIBPConfigs)
}

func TestValidate_GoodBaseURL(t *testing.T) {
	cfg := &StructuredConfig{HIBP: HIBP{BaseURL: "https://api.pwnedpasswords.com"}}
	assert.NoError(t, cfg.validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&StructuredConfig{}).validate())
}
