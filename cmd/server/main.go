// Command server starts the candidate verification HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpserver "github.com/mgentry11/candidate-verification-app/internal/adapter/httpserver"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/lookup"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/observability"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/organizer"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/report"
	localext "github.com/mgentry11/candidate-verification-app/internal/adapter/textextractor/local"
	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/app"
	"github.com/mgentry11/candidate-verification-app/internal/config"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/identity"
	"github.com/mgentry11/candidate-verification-app/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register all Prometheus metrics once per process so that /metrics
	// exposes HTTP, screening, and lookup instrumentation.
	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	rules, err := analysis.LoadRuleset(cfg.RulesetPath)
	if err != nil {
		slog.Error("ruleset load failed", slog.Any("error", err))
		os.Exit(1)
	}
	analyzer := analysis.New(rules)
	extractor := localext.New()

	// External lookups; disabled lookups degrade to manual-check payloads.
	var (
		github  domain.GitHubLookup
		archive domain.ArchiveLookup
	)
	if cfg.LookupEnabled {
		github = lookup.NewGitHubClient(cfg.GitHubAPIBaseURL, cfg.LookupTimeout)
		archive = lookup.NewWaybackClient(cfg.ArchiveAPIBaseURL, cfg.LookupTimeout)
	} else {
		slog.Info("external lookups disabled")
	}

	presence := identity.NewPresenceChecker(github, cfg.DefaultPhoneRegion)
	linkedIn := identity.NewLinkedInVerifier(archive)

	verifySvc := usecase.NewVerifyService(analyzer, extractor, presence, linkedIn)
	batchSvc := usecase.NewBatchService(analyzer, extractor)

	srv := httpserver.NewServer(cfg, verifySvc, batchSvc, report.New(), organizer.New(analyzer, extractor))
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
