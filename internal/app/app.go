package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/adapter"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/config"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/linksource"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/output"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/parser"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/render"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/scheduler"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/storage"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/infrastructure/telegram"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/logging"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/reel"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/selector"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/usecase"
)

const dbPingTimeout = 10 * time.Second

// Options are process-level switches that are not part of the config file.
type Options struct {
	// DryRun renders reels locally and skips the ledger and notifications.
	DryRun bool
}

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
	closers   []func() error
}

// New builds a runnable application instance. Close releases what it opened.
func New(ctx context.Context, cfg config.Config, opts Options, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	a := &Application{cfg: cfg, logger: baseLogger}

	selectors, err := selector.NewRegistryFromConfig(cfg.Selectors)
	if err != nil {
		return nil, err
	}

	fetcher := parser.NewFetcher(nil, parser.FetcherConfig{
		UserAgent:     cfg.Extractor.UserAgent,
		Timeout:       cfg.Extractor.Timeout,
		HostInterval:  cfg.Extractor.HostInterval,
		MaxDelay:      cfg.Extractor.MaxDelay,
		MaxBodyBytes:  cfg.Extractor.MaxBodyBytes,
		RespectRobots: cfg.Extractor.RespectRobots,
	}, baseLogger.With("component", "fetcher"))
	extractOpts := domain.ExtractOptions{MaxAttempts: cfg.Extractor.MaxAttempts, BaseDelay: cfg.Extractor.BaseDelay}
	extractor := parser.NewExtractor(fetcher, selectors, extractOpts, baseLogger.With("component", "extractor"))

	var reels ports.ReelGenerator
	if cfg.Reel.Enabled {
		generator, err := a.reelGenerator(opts)
		if err != nil {
			return nil, err
		}
		reels = generator
		for _, tmpl := range generator.Templates().List() {
			baseLogger.Debug("reel template available", "id", tmpl.ID, "type", tmpl.Type)
		}
	}

	var ledger ports.ProcessedLedger
	if cfg.Database.DSN != "" && !opts.DryRun {
		pg, err := a.openLedger(ctx)
		if err != nil {
			a.Close()
			return nil, err
		}
		ledger = pg
	}

	sink, err := output.Open(cfg.Output.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, sink.Close)

	var notifier ports.Notifier
	tg := telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	if tg.Configured() && !opts.DryRun {
		notifier = tg
	}

	a.pipeline = usecase.NewPipeline(usecase.PipelineDeps{
		Links:     linksource.New(cfg.Links.File, cfg.Links.URLs, baseLogger),
		Extractor: extractor,
		Adapter:   adapter.New(),
		Reels:     reels,
		Ledger:    ledger,
		Sink:      sink,
		Notifier:  notifier,
		Logger:    baseLogger,
		Options: usecase.PipelineOptions{
			Formats: cfg.Formats(),
			Adapt: domain.AdaptOptions{
				MaxLength:           cfg.Adapter.MaxLength,
				IncludeHashtags:     cfg.Adapter.IncludeHashtags,
				IncludeCallToAction: cfg.Adapter.IncludeCallToAction,
				Tone:                domain.Tone(cfg.Adapter.Tone),
				TargetAudience:      cfg.Adapter.TargetAudience,
			},
			Extract: extractOpts,
			Reel: domain.ReelOptions{
				TemplateID:   cfg.Reel.TemplateID,
				Quality:      cfg.Reel.Quality,
				AspectRatio:  cfg.Reel.AspectRatio,
				OutputFormat: cfg.Reel.OutputFormat,
				FPS:          cfg.Reel.FPS,
				Duration:     cfg.Reel.Duration,
				AudioURL:     cfg.Reel.AudioURL,
			},
			GenerateReels:   reels != nil,
			Concurrency:     cfg.Pipeline.Concurrency,
			ReelFromContent: cfg.Reel.FromContent,
		},
	})

	driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, cfg.Scheduler.Location(), baseLogger)
	a.scheduler = usecase.NewScheduler(driver, a.pipeline, baseLogger)

	baseLogger.Info("application wired",
		"formats", cfg.Adapter.Formats,
		"reels", reels != nil,
		"ledger", ledger != nil,
		"notifier", notifier != nil,
		"dry_run", opts.DryRun,
	)
	return a, nil
}

func (a *Application) reelGenerator(opts Options) (*reel.Generator, error) {
	templates := reel.NewTemplateRegistry()
	for _, tmpl := range a.cfg.Reel.Templates {
		if err := templates.Register(tmpl); err != nil {
			return nil, fmt.Errorf("reel templates: %w", err)
		}
	}

	var provider ports.RenderProvider
	switch {
	case opts.DryRun:
		provider = render.DryRunProvider{}
	case a.cfg.Render.Endpoint == "":
		a.logger.Warn("render endpoint not configured, rendering reels locally")
		provider = render.DryRunProvider{}
	default:
		provider = render.NewClient(a.cfg.Render.Endpoint, a.cfg.Render.APIKey, a.cfg.Render.Timeout)
	}

	brand := reel.Branding{
		LogoURL:    a.cfg.Reel.Branding.LogoURL,
		BrandName:  a.cfg.Reel.Branding.BrandName,
		BrandColor: a.cfg.Reel.Branding.BrandColor,
	}
	return reel.NewGenerator(provider, templates, brand, a.logger), nil
}

func (a *Application) openLedger(ctx context.Context) (*storage.PostgresLedger, error) {
	db, err := sql.Open("postgres", a.cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	ledger := storage.NewPostgresLedger(db)
	if err := ledger.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Run performs a single pipeline execution.
func (a *Application) Run(ctx context.Context) (domain.Report, error) {
	return a.pipeline.Run(ctx)
}

// Serve runs the pipeline on the configured cron expression until ctx ends.
func (a *Application) Serve(ctx context.Context) error {
	if err := scheduler.Validate(a.cfg.Scheduler.CronExpression); err != nil {
		return err
	}
	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.scheduler.Stop(stopCtx)
}

// Close releases files and connections in reverse order.
func (a *Application) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
