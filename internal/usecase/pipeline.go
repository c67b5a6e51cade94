package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/metrics"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

const defaultConcurrency = 4

// PipelineOptions tunes one pipeline.
type PipelineOptions struct {
	Formats       []domain.Format
	Adapt         domain.AdaptOptions
	Extract       domain.ExtractOptions
	Reel          domain.ReelOptions
	GenerateReels bool
	Concurrency   int

	// ReelFromContent renders reels from the adapted reel-format content
	// when that format is produced; the article is used otherwise.
	ReelFromContent bool
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
// Ledger, Reels and Notifier are optional.
type PipelineDeps struct {
	Links     ports.LinkSource
	Extractor ports.ArticleExtractor
	Adapter   ports.ContentAdapter
	Reels     ports.ReelGenerator
	Ledger    ports.ProcessedLedger
	Sink      ports.OutputSink
	Notifier  ports.Notifier
	Logger    *slog.Logger
	Options   PipelineOptions
}

// Pipeline turns article links into adapted contents and reels.
type Pipeline struct {
	links     ports.LinkSource
	extractor ports.ArticleExtractor
	adapter   ports.ContentAdapter
	reels     ports.ReelGenerator
	ledger    ports.ProcessedLedger
	sink      ports.OutputSink
	notifier  ports.Notifier
	logger    *slog.Logger
	opts      PipelineOptions
	now       func() time.Time
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts := deps.Options
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []domain.Format{domain.FormatPost}
	}
	return &Pipeline{
		links:     deps.Links,
		extractor: deps.Extractor,
		adapter:   deps.Adapter,
		reels:     deps.Reels,
		ledger:    deps.Ledger,
		sink:      deps.Sink,
		notifier:  deps.Notifier,
		logger:    logger.With("component", "pipeline"),
		opts:      opts,
		now:       time.Now,
	}
}

// tally collects per-link results from concurrent workers.
type tally struct {
	mu     sync.Mutex
	report domain.Report
}

func (t *tally) add(fn func(r *domain.Report)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.report)
}

// Run processes every link not yet in the ledger. Failures of single links
// are counted in the report and never abort the run.
func (p *Pipeline) Run(ctx context.Context) (domain.Report, error) {
	if p.links == nil || p.extractor == nil || p.adapter == nil || p.sink == nil {
		return domain.Report{}, domain.ErrNotInitialized
	}

	links, err := p.links.Links(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load links: %w", err)
	}

	pending, already, err := p.pending(ctx, links)
	if err != nil {
		return domain.Report{}, err
	}

	t := &tally{report: domain.Report{Links: len(links), Already: already}}
	p.logger.Info("pipeline run started", "links", len(links), "pending", len(pending), "already_processed", already)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for _, link := range pending {
		g.Go(func() error {
			p.process(gctx, link, t)
			return nil
		})
	}
	_ = g.Wait()

	report := t.report
	p.logger.Info("pipeline run finished",
		"extracted", report.Extracted,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"contents", report.Contents,
		"reels", report.Reels,
	)

	if len(report.Failures) > 0 {
		p.alert(ctx, report)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (p *Pipeline) pending(ctx context.Context, links []domain.ArticleLink) ([]domain.ArticleLink, int, error) {
	if p.ledger == nil || len(links) == 0 {
		return links, 0, nil
	}

	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = domain.ArticleID(link.URL)
	}
	done, err := p.ledger.AlreadyProcessed(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("load processed: %w", err)
	}

	pending := make([]domain.ArticleLink, 0, len(links))
	for i, link := range links {
		if done[ids[i]] {
			continue
		}
		pending = append(pending, link)
	}
	return pending, len(links) - len(pending), nil
}

func (p *Pipeline) process(ctx context.Context, link domain.ArticleLink, t *tally) {
	start := time.Now()
	article, err := p.extractor.Extract(ctx, link, p.opts.Extract)
	outcome := domain.OutcomeOf(err)
	metrics.RecordExtraction(string(outcome), time.Since(start).Seconds())

	switch outcome {
	case domain.OutcomeFailed:
		p.logger.Warn("extraction failed", "url", link.URL, "error", err)
		t.add(func(r *domain.Report) {
			r.Failed++
			r.Failures = append(r.Failures, fmt.Sprintf("%s: %v", link.URL, err))
		})
		return
	case domain.OutcomeSkipped:
		p.logger.Info("article skipped", "url", link.URL, "reason", err)
		t.add(func(r *domain.Report) { r.Skipped++ })
		p.mark(ctx, link, link.Title, outcome, err.Error())
		return
	}

	t.add(func(r *domain.Report) { r.Extracted++ })
	p.logger.Debug("article extracted", "url", link.URL, "id", article.ID, "words", article.Content.WordCount)

	var reelContent *domain.ModifiedContent
	for _, format := range p.opts.Formats {
		content, err := p.adapt(ctx, article, format)
		if err != nil {
			p.logger.Error("content generation failed", "id", article.ID, "format", format, "error", err)
			t.add(func(r *domain.Report) {
				r.Failures = append(r.Failures, fmt.Sprintf("%s (%s): %v", link.URL, format, err))
			})
			continue
		}
		if format == domain.FormatReel {
			reelContent = &content
		}
		t.add(func(r *domain.Report) { r.Contents++ })
	}

	if p.reels != nil && p.opts.GenerateReels {
		if err := p.reel(ctx, article, reelContent); err != nil {
			p.logger.Warn("reel generation failed", "id", article.ID, "error", err)
			t.add(func(r *domain.Report) {
				r.Failures = append(r.Failures, fmt.Sprintf("%s (reel): %v", link.URL, err))
			})
		} else {
			t.add(func(r *domain.Report) { r.Reels++ })
		}
	}

	p.mark(ctx, link, article.Title, outcome, "")
}

func (p *Pipeline) adapt(ctx context.Context, article domain.Article, format domain.Format) (domain.ModifiedContent, error) {
	opts := p.opts.Adapt
	opts.TargetFormat = format
	content, err := p.adapter.Adapt(article, opts)
	if err != nil {
		return domain.ModifiedContent{}, err
	}
	if err := p.sink.WriteContent(ctx, content); err != nil {
		return domain.ModifiedContent{}, err
	}
	metrics.RecordContent(string(format))
	return content, nil
}

func (p *Pipeline) reel(ctx context.Context, article domain.Article, content *domain.ModifiedContent) error {
	var (
		reel domain.GeneratedReel
		err  error
	)
	if p.opts.ReelFromContent && content != nil {
		reel, err = p.reels.GenerateFromContent(ctx, *content, p.opts.Reel)
	} else {
		reel, err = p.reels.GenerateFromArticle(ctx, article, p.opts.Reel)
	}
	if err != nil {
		return err
	}
	return p.sink.WriteReel(ctx, reel)
}

func (p *Pipeline) mark(ctx context.Context, link domain.ArticleLink, title string, outcome domain.Outcome, reason string) {
	if p.ledger == nil {
		return
	}
	err := p.ledger.MarkProcessed(ctx, domain.ProcessedRecord{
		ArticleID:   domain.ArticleID(link.URL),
		URL:         link.URL,
		Title:       title,
		Outcome:     outcome,
		Reason:      reason,
		ProcessedAt: p.now().UTC(),
	})
	if err != nil {
		p.logger.Error("mark processed failed", "url", link.URL, "error", err)
	}
}

func (p *Pipeline) alert(ctx context.Context, report domain.Report) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.PublishDigest(ctx, buildFailureDigest(report)); err != nil && !errors.Is(err, context.Canceled) {
		p.logger.Error("publish failure digest", "error", err)
	}
}

func buildFailureDigest(report domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Content pipeline: %d failure(s) across %d link(s)\n", len(report.Failures), report.Links)
	fmt.Fprintf(&b, "extracted=%d skipped=%d failed=%d contents=%d reels=%d\n",
		report.Extracted, report.Skipped, report.Failed, report.Contents, report.Reels)
	for _, failure := range report.Failures {
		b.WriteString("- ")
		b.WriteString(failure)
		b.WriteString("\n")
	}
	return b.String()
}
