package adapter

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-breach-audit/internal/logger"
	"github.com/MKhiriev/go-breach-audit/models"
	"github.com/go-resty/resty/v2"
)

// HIBPConfig holds the settings for the HIBP range API client.
type HIBPConfig struct {
	// BaseURL is the corpus endpoint base. Defaults to the public API.
	BaseURL string
	// UserAgent identifies this tool to the API, which requires one.
	UserAgent string
	// Timeout bounds a single range request.
	Timeout time.Duration
	// AddPadding asks the API to pad responses with zero-count entries so
	// response sizes do not hint at the queried prefix. Padding entries are
	// dropped during parsing.
	AddPadding bool
	// CachePrefixes enables an in-memory same-run cache keyed by prefix.
	// Records can coincidentally share a prefix; the cache only ever lives
	// for one process run, nothing is persisted.
	CachePrefixes bool
}

type hibpClient struct {
	client     *resty.Client
	addPadding bool
	logger     *logger.Logger

	mu    sync.Mutex
	cache map[string]models.CandidateSet // nil when caching is disabled
}

// NewHIBPClient constructs the HTTP implementation of [BreachClient] for the
// HaveIBeenPwned pwned-passwords range API. Zero-value config fields fall
// back to sensible defaults.
func NewHIBPClient(cfg HIBPConfig, log *logger.Logger) BreachClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.pwnedpasswords.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "go-breach-audit/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	h := &hibpClient{client: cli, addPadding: cfg.AddPadding, logger: log}
	if cfg.CachePrefixes {
		h.cache = make(map[string]models.CandidateSet)
	}

	return h
}

var prefixPattern = regexp.MustCompile(`^[0-9A-F]{5}$`)

// Lookup implements [BreachClient]. It issues GET /range/{prefix} and parses
// the newline-separated REMAINDER:COUNT body. Malformed lines are skipped
// with a warning; transport errors and non-2xx statuses propagate so the
// caller can tell "confirmed not found" from "lookup failed".
func (h *hibpClient) Lookup(ctx context.Context, prefix string) (models.CandidateSet, error) {
	if !prefixPattern.MatchString(prefix) {
		return nil, ErrBadPrefix
	}

	if set, ok := h.cached(prefix); ok {
		return set, nil
	}

	req := h.client.R().SetContext(ctx)
	if h.addPadding {
		req.SetHeader("Add-Padding", "true")
	}

	resp, err := req.Get("/range/" + prefix)
	if err != nil {
		return nil, fmt.Errorf("range request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	set := h.parseRange(resp.Body())
	h.store(prefix, set)

	return set, nil
}

// parseRange converts a range response body into a CandidateSet. Remainders
// are upper-cased for byte-for-byte comparison against fingerprints.
// Zero-count entries are padding and carry no breach information.
func (h *hibpClient) parseRange(body []byte) models.CandidateSet {
	var set models.CandidateSet

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		remainder, countPart, found := strings.Cut(line, ":")
		if !found {
			h.logger.Warn().Msg("skipping malformed corpus line: missing separator")
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countPart))
		if err != nil || count < 0 {
			h.logger.Warn().Msg("skipping malformed corpus line: bad count")
			continue
		}
		if count == 0 {
			continue
		}

		set = append(set, models.Candidate{
			Remainder: strings.ToUpper(strings.TrimSpace(remainder)),
			Count:     count,
		})
	}

	return set
}

func (h *hibpClient) cached(prefix string) (models.CandidateSet, bool) {
	if h.cache == nil {
		return nil, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.cache[prefix]
	return set, ok
}

func (h *hibpClient) store(prefix string, set models.CandidateSet) {
	if h.cache == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.cache[prefix] = set
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return ErrRateLimited
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
