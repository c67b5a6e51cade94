package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/jessevdk/go-flags"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/app"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/config"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/logging"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/metrics"
)

type cliOptions struct {
	Config      string   `short:"c" long:"config" env:"CONTENT_PIPELINE_CONFIG" description:"Path to the YAML configuration file"`
	Links       string   `long:"links" description:"File with article links (one URL per line or YAML)"`
	URLs        []string `short:"u" long:"url" description:"Article URL to process; may be repeated"`
	Output      string   `short:"o" long:"output" description:"JSON lines output file; '-' writes to stdout"`
	Schedule    bool     `long:"schedule" description:"Keep running and process links on the configured cron expression"`
	MetricsAddr string   `long:"metrics-addr" env:"METRICS_ADDR" description:"Serve Prometheus metrics on this address, e.g. :9090"`
	LogLevel    string   `long:"log-level" description:"Override the configured log level"`
	DryRun      bool     `long:"dry-run" description:"Render reels locally and skip the ledger and notifications"`
}

func main() {
	opts, ok := parseOptions()
	if !ok {
		return
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(&cfg, opts)

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("application stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func parseOptions() (cliOptions, bool) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return opts, false
		}
		os.Exit(2)
	}
	return opts, true
}

func applyFlags(cfg *config.Config, opts cliOptions) {
	if opts.Links != "" {
		cfg.Links.File = opts.Links
	}
	for _, u := range opts.URLs {
		cfg.Links.URLs = append(cfg.Links.URLs, domain.ArticleLink{URL: u})
	}
	if opts.Output != "" {
		cfg.Output.Path = opts.Output
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
}

func run(ctx context.Context, cfg config.Config, opts cliOptions, logger *slog.Logger) error {
	application, err := app.New(ctx, cfg, app.Options{DryRun: opts.DryRun}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close application", "error", err)
		}
	}()

	if opts.MetricsAddr != "" {
		shutdown := serveMetrics(opts.MetricsAddr, logger)
		defer shutdown()
	}

	if opts.Schedule {
		return application.Serve(ctx)
	}

	report, err := application.Run(ctx)
	logger.Info("run finished",
		"links", report.Links,
		"already_processed", report.Already,
		"extracted", report.Extracted,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"contents", report.Contents,
		"reels", report.Reels,
	)
	return err
}

func serveMetrics(addr string, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
