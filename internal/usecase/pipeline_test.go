package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports/mocks"
)

type pipelineMocks struct {
	links     *mocks.MockLinkSource
	extractor *mocks.MockArticleExtractor
	adapter   *mocks.MockContentAdapter
	reels     *mocks.MockReelGenerator
	ledger    *mocks.MockProcessedLedger
	sink      *mocks.MockOutputSink
	notifier  *mocks.MockNotifier
}

func newPipelineMocks(t *testing.T) pipelineMocks {
	ctrl := gomock.NewController(t)
	return pipelineMocks{
		links:     mocks.NewMockLinkSource(ctrl),
		extractor: mocks.NewMockArticleExtractor(ctrl),
		adapter:   mocks.NewMockContentAdapter(ctrl),
		reels:     mocks.NewMockReelGenerator(ctrl),
		ledger:    mocks.NewMockProcessedLedger(ctrl),
		sink:      mocks.NewMockOutputSink(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}
}

func (m pipelineMocks) deps(opts PipelineOptions) PipelineDeps {
	return PipelineDeps{
		Links:     m.links,
		Extractor: m.extractor,
		Adapter:   m.adapter,
		Reels:     m.reels,
		Ledger:    m.ledger,
		Sink:      m.sink,
		Notifier:  m.notifier,
		Options:   opts,
	}
}

func link(path string) domain.ArticleLink {
	return domain.ArticleLink{URL: "https://blog.example.org/" + path}
}

func recordFor(l domain.ArticleLink, outcome domain.Outcome) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		r, ok := x.(domain.ProcessedRecord)
		return ok && r.ArticleID == domain.ArticleID(l.URL) && r.URL == l.URL && r.Outcome == outcome && !r.ProcessedAt.IsZero()
	})
}

func TestPipelineRun(t *testing.T) {
	m := newPipelineMocks(t)
	done, ok, thin, broken := link("done"), link("ok"), link("thin"), link("broken")

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{done, ok, thin, broken}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), []string{
		domain.ArticleID(done.URL), domain.ArticleID(ok.URL), domain.ArticleID(thin.URL), domain.ArticleID(broken.URL),
	}).Return(map[string]bool{domain.ArticleID(done.URL): true}, nil)

	article := domain.Article{ID: domain.ArticleID(ok.URL), Title: "Lernplan"}
	extractOpts := domain.ExtractOptions{MaxAttempts: 2, BaseDelay: time.Millisecond}
	m.extractor.EXPECT().Extract(gomock.Any(), ok, extractOpts).Return(article, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), thin, extractOpts).Return(domain.Article{}, fmt.Errorf("no body text: %w", domain.ErrInsufficientContent))
	m.extractor.EXPECT().Extract(gomock.Any(), broken, extractOpts).Return(domain.Article{}, &domain.FetchError{URL: broken.URL, Attempts: 2, StatusCode: 503, Err: errors.New("status 503")})

	for _, format := range []domain.Format{domain.FormatPost, domain.FormatCarousel} {
		opts := domain.AdaptOptions{TargetFormat: format, Tone: domain.ToneCasual, IncludeHashtags: true}
		m.adapter.EXPECT().Adapt(article, opts).Return(domain.ModifiedContent{ID: string(format), Format: format}, nil)
	}
	m.sink.EXPECT().WriteContent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	reelOpts := domain.ReelOptions{Quality: "720p"}
	m.reels.EXPECT().GenerateFromArticle(gomock.Any(), article, reelOpts).Return(domain.GeneratedReel{ID: "r1"}, nil)
	m.sink.EXPECT().WriteReel(gomock.Any(), domain.GeneratedReel{ID: "r1"}).Return(nil)

	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(ok, domain.OutcomeExtracted)).Return(nil)
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(thin, domain.OutcomeSkipped)).Return(nil)

	m.notifier.EXPECT().PublishDigest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, digest string) error {
		assert.Contains(t, digest, broken.URL)
		assert.Contains(t, digest, "1 failure(s)")
		assert.NotContains(t, digest, thin.URL)
		return nil
	})

	p := NewPipeline(m.deps(PipelineOptions{
		Formats:       []domain.Format{domain.FormatPost, domain.FormatCarousel},
		Adapt:         domain.AdaptOptions{Tone: domain.ToneCasual, IncludeHashtags: true},
		Extract:       extractOpts,
		Reel:          reelOpts,
		GenerateReels: true,
		Concurrency:   2,
	}))

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Links)
	assert.Equal(t, 1, report.Already)
	assert.Equal(t, 1, report.Extracted)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Contents)
	assert.Equal(t, 1, report.Reels)
	require.Len(t, report.Failures, 1)
	assert.True(t, strings.HasPrefix(report.Failures[0], broken.URL))
}

func TestPipelineRunWithoutOptionalDeps(t *testing.T) {
	m := newPipelineMocks(t)
	a := link("a")

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{a}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), a, gomock.Any()).Return(domain.Article{ID: "a"}, nil)
	m.adapter.EXPECT().Adapt(gomock.Any(), gomock.Any()).DoAndReturn(func(_ domain.Article, opts domain.AdaptOptions) (domain.ModifiedContent, error) {
		assert.Equal(t, domain.FormatPost, opts.TargetFormat)
		return domain.ModifiedContent{ID: "c"}, nil
	})
	m.sink.EXPECT().WriteContent(gomock.Any(), gomock.Any()).Return(nil)

	p := NewPipeline(PipelineDeps{Links: m.links, Extractor: m.extractor, Adapter: m.adapter, Sink: m.sink})
	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Extracted)
	assert.Equal(t, 1, report.Contents)
	assert.Empty(t, report.Failures)
}

func TestPipelineRunReelFailureDoesNotStopContent(t *testing.T) {
	m := newPipelineMocks(t)
	a := link("a")
	article := domain.Article{ID: "a"}
	boom := &domain.RenderError{SourceID: "a", TemplateID: "quote-reel", Err: errors.New("provider down")}

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{a}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), a, gomock.Any()).Return(article, nil)
	m.adapter.EXPECT().Adapt(article, gomock.Any()).Return(domain.ModifiedContent{ID: "c"}, nil)
	m.sink.EXPECT().WriteContent(gomock.Any(), domain.ModifiedContent{ID: "c"}).Return(nil)
	m.reels.EXPECT().GenerateFromArticle(gomock.Any(), article, gomock.Any()).Return(domain.GeneratedReel{}, boom)
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(a, domain.OutcomeExtracted)).Return(nil)
	m.notifier.EXPECT().PublishDigest(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))

	p := NewPipeline(m.deps(PipelineOptions{GenerateReels: true}))
	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Contents)
	assert.Equal(t, 0, report.Reels)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "(reel)")
}

func TestPipelineRunRendersReelFromAdaptedContent(t *testing.T) {
	m := newPipelineMocks(t)
	a := link("a")
	article := domain.Article{ID: "a"}
	reelContent := domain.ModifiedContent{ID: "a_reel_1", OriginalArticleID: "a", Format: domain.FormatReel}

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{a}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), a, gomock.Any()).Return(article, nil)
	m.adapter.EXPECT().Adapt(article, gomock.Any()).DoAndReturn(func(_ domain.Article, opts domain.AdaptOptions) (domain.ModifiedContent, error) {
		if opts.TargetFormat == domain.FormatReel {
			return reelContent, nil
		}
		return domain.ModifiedContent{ID: "a_post_1", Format: opts.TargetFormat}, nil
	}).Times(2)
	m.sink.EXPECT().WriteContent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.reels.EXPECT().GenerateFromContent(gomock.Any(), reelContent, gomock.Any()).Return(domain.GeneratedReel{ID: "r1", ContentID: reelContent.ID}, nil)
	m.sink.EXPECT().WriteReel(gomock.Any(), domain.GeneratedReel{ID: "r1", ContentID: reelContent.ID}).Return(nil)
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(a, domain.OutcomeExtracted)).Return(nil)

	p := NewPipeline(m.deps(PipelineOptions{
		Formats:         []domain.Format{domain.FormatPost, domain.FormatReel},
		GenerateReels:   true,
		ReelFromContent: true,
	}))
	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Reels)
	assert.Empty(t, report.Failures)
}

func TestPipelineRunReelFromContentFallsBackToArticle(t *testing.T) {
	m := newPipelineMocks(t)
	a := link("a")
	article := domain.Article{ID: "a"}

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{a}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), a, gomock.Any()).Return(article, nil)
	m.adapter.EXPECT().Adapt(article, gomock.Any()).Return(domain.ModifiedContent{ID: "c"}, nil)
	m.sink.EXPECT().WriteContent(gomock.Any(), gomock.Any()).Return(nil)
	m.reels.EXPECT().GenerateFromArticle(gomock.Any(), article, gomock.Any()).Return(domain.GeneratedReel{ID: "r1"}, nil)
	m.sink.EXPECT().WriteReel(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(a, domain.OutcomeExtracted)).Return(nil)

	p := NewPipeline(m.deps(PipelineOptions{GenerateReels: true, ReelFromContent: true}))
	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Reels)
}

func TestPipelineRunMarksInvalidLinksSkipped(t *testing.T) {
	m := newPipelineMocks(t)
	bad := domain.ArticleLink{URL: "ftp://blog.example.org/file"}

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{bad}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), bad, gomock.Any()).Return(domain.Article{}, fmt.Errorf("%w: %q", domain.ErrInvalidLink, bad.URL))
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(bad, domain.OutcomeSkipped)).Return(nil)
	m.notifier.EXPECT().PublishDigest(gomock.Any(), gomock.Any()).Times(0)

	report, err := NewPipeline(m.deps(PipelineOptions{})).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Failures)
}

func TestPipelineRunNoFailuresSendsNoAlert(t *testing.T) {
	m := newPipelineMocks(t)
	a := link("a")

	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{a}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil)
	m.extractor.EXPECT().Extract(gomock.Any(), a, gomock.Any()).Return(domain.Article{}, domain.ErrDisallowedByRobots)
	m.ledger.EXPECT().MarkProcessed(gomock.Any(), recordFor(a, domain.OutcomeSkipped)).Return(errors.New("db down"))

	report, err := NewPipeline(m.deps(PipelineOptions{})).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
}

func TestPipelineRunSourceError(t *testing.T) {
	m := newPipelineMocks(t)
	m.links.EXPECT().Links(gomock.Any()).Return(nil, errors.New("file missing"))

	_, err := NewPipeline(m.deps(PipelineOptions{})).Run(context.Background())
	require.ErrorContains(t, err, "load links")
}

func TestPipelineRunLedgerError(t *testing.T) {
	m := newPipelineMocks(t)
	m.links.EXPECT().Links(gomock.Any()).Return([]domain.ArticleLink{link("a")}, nil)
	m.ledger.EXPECT().AlreadyProcessed(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := NewPipeline(m.deps(PipelineOptions{})).Run(context.Background())
	require.ErrorContains(t, err, "load processed")
}

func TestPipelineNotInitialized(t *testing.T) {
	_, err := NewPipeline(PipelineDeps{}).Run(context.Background())
	require.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestBuildFailureDigest(t *testing.T) {
	digest := buildFailureDigest(domain.Report{Links: 3, Failed: 2, Failures: []string{"x: boom", "y: bang"}})
	assert.Equal(t, "Content pipeline: 2 failure(s) across 3 link(s)\n"+
		"extracted=0 skipped=0 failed=2 contents=0 reels=0\n"+
		"- x: boom\n- y: bang\n", digest)
}
