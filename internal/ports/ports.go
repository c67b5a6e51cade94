package ports

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"time"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
)

// LinkSource supplies candidate article links; discovery happens elsewhere.
type LinkSource interface {
	Links(ctx context.Context) ([]domain.ArticleLink, error)
}

// ArticleExtractor turns one link into an Article.
type ArticleExtractor interface {
	Extract(ctx context.Context, link domain.ArticleLink, opts domain.ExtractOptions) (domain.Article, error)
}

// ContentAdapter renders an Article into a platform-specific bundle.
type ContentAdapter interface {
	Adapt(article domain.Article, opts domain.AdaptOptions) (domain.ModifiedContent, error)
}

// ReelGenerator produces videos from articles or adapted content.
type ReelGenerator interface {
	GenerateFromArticle(ctx context.Context, article domain.Article, opts domain.ReelOptions) (domain.GeneratedReel, error)
	GenerateFromContent(ctx context.Context, content domain.ModifiedContent, opts domain.ReelOptions) (domain.GeneratedReel, error)
}

// RenderProvider is the external video rendering service.
type RenderProvider interface {
	Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error)
}

// ProcessedLedger remembers which articles were already handled.
type ProcessedLedger interface {
	AlreadyProcessed(ctx context.Context, ids []string) (map[string]bool, error)
	MarkProcessed(ctx context.Context, record domain.ProcessedRecord) error
}

// OutputSink hands generated values to the publication layer.
type OutputSink interface {
	WriteContent(ctx context.Context, content domain.ModifiedContent) error
	WriteReel(ctx context.Context, reel domain.GeneratedReel) error
}

// Notifier streams alerts to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
