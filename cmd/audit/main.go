package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-breach-audit/internal/adapter"
	"github.com/MKhiriev/go-breach-audit/internal/config"
	"github.com/MKhiriev/go-breach-audit/internal/logger"
	"github.com/MKhiriev/go-breach-audit/internal/report"
	"github.com/MKhiriev/go-breach-audit/internal/service"
	"github.com/MKhiriev/go-breach-audit/internal/source"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitSourceError = 2
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("audit").WithRunID(uuid.NewString())

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	credentials := source.NewOnePasswordSource(source.OnePasswordConfig{
		Binary:     cfg.Source.Binary,
		Categories: cfg.Source.Categories,
		Vault:      cfg.Source.Vault,
	}, log)

	corpus := adapter.NewHIBPClient(adapter.HIBPConfig{
		BaseURL:       cfg.HIBP.BaseURL,
		UserAgent:     cfg.HIBP.UserAgent,
		Timeout:       cfg.HIBP.RequestTimeout,
		AddPadding:    cfg.HIBP.AddPadding,
		CachePrefixes: cfg.HIBP.CachePrefixes,
	}, log)

	audit := service.NewAuditService(credentials, corpus, service.AuditConfig{
		Concurrency: cfg.App.Concurrency,
		Delay:       cfg.App.Delay,
	}, log)

	results, summary, err := audit.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("audit failed")
		if errors.Is(err, source.ErrSourceUnavailable) || errors.Is(err, source.ErrMalformedOutput) {
			os.Exit(exitSourceError)
		}
		os.Exit(exitFatal)
	}

	out := report.NewWriter(os.Stdout)
	for _, result := range results {
		out.Finding(result)
	}
	out.Summary(summary)

	log.Info().
		Int("total_checked", summary.TotalChecked).
		Int("total_pwned", summary.TotalPwned).
		Msg("audit complete")

	os.Exit(exitOK)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
