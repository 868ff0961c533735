package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-breach-audit/internal/adapter"
	"github.com/MKhiriev/go-breach-audit/internal/fingerprint"
	"github.com/MKhiriev/go-breach-audit/internal/logger"
	"github.com/MKhiriev/go-breach-audit/internal/source"
	"github.com/MKhiriev/go-breach-audit/internal/workers"
	"github.com/MKhiriev/go-breach-audit/models"
)

// AuditConfig holds the pipeline settings.
type AuditConfig struct {
	// Concurrency is the number of corpus lookups allowed in flight.
	// Values below one mean sequential processing.
	Concurrency int
	// Delay spaces lookup starts to stay polite to the corpus API.
	Delay time.Duration
}

type auditService struct {
	source source.CredentialSource
	client adapter.BreachClient
	pool   workers.Pool
	logger *logger.Logger
}

// NewAuditService wires the credential source and the breach client into an
// [AuditService].
func NewAuditService(src source.CredentialSource, client adapter.BreachClient, cfg AuditConfig, log *logger.Logger) AuditService {
	return &auditService{
		source: src,
		client: client,
		pool:   workers.Pool{Limit: cfg.Concurrency, Delay: cfg.Delay},
		logger: log,
	}
}

// outcome is the per-record product of the lookup stage, indexed by input
// position so the final report preserves source order regardless of how the
// lookups were scheduled.
type outcome struct {
	result models.BreachResult
	pwned  bool
	failed bool
}

// Run implements [AuditService].
func (a *auditService) Run(ctx context.Context) ([]models.BreachResult, models.Summary, error) {
	var summary models.Summary

	records, err := a.source.Logins(ctx)
	if err != nil {
		return nil, summary, fmt.Errorf("enumerate logins: %w", err)
	}

	checkable := make([]models.LoginRecord, 0, len(records))
	for _, record := range records {
		if !record.HasPassword() {
			a.logger.Warn().
				Str("item_id", record.ID).
				Str("title", record.Title).
				Msg("no password field found, skipping")
			continue
		}
		checkable = append(checkable, record)
	}
	summary.TotalChecked = len(checkable)

	outcomes := make([]outcome, len(checkable))
	err = a.pool.Run(ctx, len(checkable), func(ctx context.Context, i int) error {
		return a.checkRecord(ctx, checkable[i], &outcomes[i])
	})
	if err != nil {
		if !errors.Is(err, adapter.ErrRateLimited) {
			return nil, summary, err
		}
		// Keep whatever completed: a partial audit beats a discarded one.
		a.logger.Error().Msg("rate limited by breach corpus, aborting remaining checks")
	}

	results := make([]models.BreachResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.pwned {
			results = append(results, o.result)
			summary.TotalPwned++
		}
	}

	return results, summary, nil
}

// checkRecord runs the fingerprint -> lookup -> resolve stages for a single
// record, writing into its own outcome slot. Lookup failures other than rate
// limiting are record-local: logged, marked failed, and the run continues.
func (a *auditService) checkRecord(ctx context.Context, record models.LoginRecord, out *outcome) error {
	fp := fingerprint.New(record.Password)

	candidates, err := a.client.Lookup(ctx, fp.Prefix)
	if err != nil {
		if errors.Is(err, adapter.ErrRateLimited) {
			return err
		}
		a.logger.Error().
			Str("item_id", record.ID).
			Str("title", record.Title).
			Err(err).
			Msg("breach lookup failed, record skipped")
		out.failed = true
		return nil
	}

	pwned, count := a.resolveMatch(fp, candidates)
	if pwned {
		out.pwned = true
		out.result = models.BreachResult{
			ID:    record.ID,
			Title: record.Title,
			Email: record.Email,
			URL:   record.URL,
			Pwned: true,
			Count: count,
		}
	}

	return nil
}

// resolveMatch scans candidates for an entry matching the fingerprint's
// remainder. Matching is case-insensitive. The corpus guarantees at most one
// entry per remainder; should a response ever carry duplicates, the first
// occurrence wins and later counts are ignored, since summing them would
// misstate breach severity.
func (a *auditService) resolveMatch(fp models.Fingerprint, candidates models.CandidateSet) (bool, int) {
	found := false
	count := 0

	for _, c := range candidates {
		if !strings.EqualFold(c.Remainder, fp.Remainder) {
			continue
		}
		if found {
			a.logger.Warn().Msg("duplicate remainder in corpus response, keeping first occurrence")
			continue
		}
		found = true
		count = c.Count
	}

	return found, count
}
