package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/go-breach-audit/internal/logger"
	"github.com/MKhiriev/go-breach-audit/models"
)

// commandRunner abstracts execution of the op binary so tests can stub the
// subprocess boundary.
type commandRunner interface {
	run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

func (r execRunner) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: op %s: %s", ErrSourceUnavailable, args[0], msg)
	}

	return stdout.Bytes(), nil
}

// OnePasswordConfig holds the settings for the op CLI source.
type OnePasswordConfig struct {
	// Binary is the op executable name or path. Defaults to "op".
	Binary string
	// Categories filters the item listing. Defaults to "Login".
	Categories string
	// Vault restricts the listing to one vault. Empty means all vaults.
	Vault string
}

type onePasswordSource struct {
	runner     commandRunner
	categories string
	vault      string
	logger     *logger.Logger
}

// NewOnePasswordSource constructs a [CredentialSource] backed by the
// 1Password `op` CLI. The user must already be signed in; interactive
// authorization is op's concern, not ours.
func NewOnePasswordSource(cfg OnePasswordConfig, log *logger.Logger) CredentialSource {
	if cfg.Binary == "" {
		cfg.Binary = "op"
	}
	if cfg.Categories == "" {
		cfg.Categories = "Login"
	}

	return &onePasswordSource{
		runner:     execRunner{binary: cfg.Binary},
		categories: cfg.Categories,
		vault:      cfg.Vault,
		logger:     log,
	}
}

// op JSON shapes. Only the fields we read are declared.
type itemSummary struct {
	ID string `json:"id"`
}

type itemDetail struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Fields []itemField `json:"fields"`
	URLs   []itemURL   `json:"urls"`
}

type itemField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type itemURL struct {
	Primary bool   `json:"primary"`
	Href    string `json:"href"`
}

// Logins implements [CredentialSource]. It lists item summaries first, then
// fetches the full item JSON one by one, in listing order. Items whose
// summary lacks an ID or whose detail fetch or decode fails are skipped with
// a warning; a failing initial listing fails the whole call.
func (s *onePasswordSource) Logins(ctx context.Context) ([]models.LoginRecord, error) {
	args := []string{"item", "list", "--categories", s.categories, "--format", "json"}
	if s.vault != "" {
		args = append(args, "--vault", s.vault)
	}

	out, err := s.runner.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	var summaries []itemSummary
	if err = json.Unmarshal(out, &summaries); err != nil {
		return nil, fmt.Errorf("%w: decode item list: %v", ErrMalformedOutput, err)
	}

	s.logger.Info().Int("items", len(summaries)).Msg("fetched login item list")

	records := make([]models.LoginRecord, 0, len(summaries))
	for i, summary := range summaries {
		if summary.ID == "" {
			s.logger.Warn().Int("position", i).Msg("skipping item summary without id")
			continue
		}

		record, err := s.fetchItem(ctx, summary.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn().Str("item_id", summary.ID).Err(err).Msg("skipping item")
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *onePasswordSource) fetchItem(ctx context.Context, id string) (models.LoginRecord, error) {
	out, err := s.runner.run(ctx, "item", "get", id, "--format", "json")
	if err != nil {
		return models.LoginRecord{}, fmt.Errorf("get item: %w", err)
	}

	var detail itemDetail
	if err = json.Unmarshal(out, &detail); err != nil {
		return models.LoginRecord{}, fmt.Errorf("%w: decode item: %v", ErrMalformedOutput, err)
	}

	return newLoginRecord(detail), nil
}

// newLoginRecord normalizes an op item into the uniform login model.
// Missing optional fields default to empty strings; password-less records
// are kept here and filtered by the pipeline, which excludes them from the
// checked total.
func newLoginRecord(d itemDetail) models.LoginRecord {
	record := models.LoginRecord{ID: d.ID, Title: d.Title}
	if record.Title == "" {
		record.Title = "unknown-title"
	}

	for _, f := range d.Fields {
		switch f.ID {
		case "password":
			record.Password = models.Secret(f.Value)
		case "username":
			record.Email = f.Value
		}
	}

	for _, u := range d.URLs {
		if u.Primary {
			record.URL = u.Href
			break
		}
	}

	return record
}
