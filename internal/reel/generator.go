// Package reel selects a video template for an article or adapted content,
// builds the render payload and delegates rendering to an external provider.
package reel

import (
	"context"
	"log/slog"
	"time"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/metrics"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

const (
	defaultOutputFormat = "mp4"
	defaultFPS          = 30
)

// Generator implements ports.ReelGenerator.
type Generator struct {
	provider  ports.RenderProvider
	templates *TemplateRegistry
	branding  Branding
	now       func() time.Time
	logger    *slog.Logger
}

var _ ports.ReelGenerator = (*Generator)(nil)

// NewGenerator wires a generator. A nil registry gets the built-ins only.
func NewGenerator(provider ports.RenderProvider, templates *TemplateRegistry, branding Branding, logger *slog.Logger) *Generator {
	if templates == nil {
		templates = NewTemplateRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		provider:  provider,
		templates: templates,
		branding:  branding,
		now:       time.Now,
		logger:    logger.With("component", "reel"),
	}
}

// Templates exposes the registry for listing and runtime registration.
func (g *Generator) Templates() *TemplateRegistry {
	return g.templates
}

// GenerateFromArticle renders a reel for an extracted article.
func (g *Generator) GenerateFromArticle(ctx context.Context, article domain.Article, opts domain.ReelOptions) (domain.GeneratedReel, error) {
	src := fromArticle(article)
	reel, err := g.generate(ctx, src, opts, articleOverlayMin)
	if err != nil {
		return domain.GeneratedReel{}, err
	}
	reel.ArticleID = article.ID
	return reel, nil
}

// GenerateFromContent renders a reel for an adapted content.
func (g *Generator) GenerateFromContent(ctx context.Context, content domain.ModifiedContent, opts domain.ReelOptions) (domain.GeneratedReel, error) {
	src := fromContent(content)
	reel, err := g.generate(ctx, src, opts, contentOverlayMin)
	if err != nil {
		return domain.GeneratedReel{}, err
	}
	reel.ArticleID = content.OriginalArticleID
	reel.ContentID = content.ID
	return reel, nil
}

func (g *Generator) generate(ctx context.Context, src source, opts domain.ReelOptions, overlayMin int) (domain.GeneratedReel, error) {
	if g == nil || g.provider == nil {
		return domain.GeneratedReel{}, domain.ErrNotInitialized
	}

	tmpl, err := g.pick(src, opts.TemplateID, overlayMin)
	if err != nil {
		return domain.GeneratedReel{}, err
	}

	if opts.OutputFormat == "" {
		opts.OutputFormat = defaultOutputFormat
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Quality == "" {
		opts.Quality = defaultQuality
	}
	width, height := resolution(opts.Quality, opts.AspectRatio)

	req := domain.RenderRequest{
		TemplateID:    tmpl.ID,
		Modifications: modifications(src, opts, g.branding),
		OutputFormat:  opts.OutputFormat,
		Width:         width,
		Height:        height,
		FPS:           opts.FPS,
		Quality:       opts.Quality,
	}

	g.logger.Debug("rendering reel", "source", src.id, "template", tmpl.ID, "width", width, "height", height)

	res, err := g.provider.Render(ctx, req)
	if err != nil {
		metrics.RecordReel(tmpl.ID, metrics.ResultError)
		g.logger.Warn("render failed", "source", src.id, "template", tmpl.ID, "error", err)
		return domain.GeneratedReel{}, &domain.RenderError{SourceID: src.id, TemplateID: tmpl.ID, Err: err}
	}
	metrics.RecordReel(tmpl.ID, metrics.ResultSuccess)

	format := res.Format
	if format == "" {
		format = opts.OutputFormat
	}
	return domain.GeneratedReel{
		ID:           res.ID,
		VideoURL:     res.URL,
		ThumbnailURL: res.ThumbnailURL,
		Duration:     res.Duration,
		Width:        res.Width,
		Height:       res.Height,
		Format:       format,
		Size:         res.Size,
		TemplateID:   tmpl.ID,
		CreatedAt:    g.now().UTC(),
	}, nil
}

func (g *Generator) pick(src source, pinned string, overlayMin int) (domain.ReelTemplate, error) {
	if pinned != "" {
		return g.templates.Get(pinned)
	}
	return g.templates.builtin(selectType(src, overlayMin)), nil
}
