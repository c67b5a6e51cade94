package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/selector"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/textkit"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// blocks whose text becomes one paragraph of the plain-text body.
const textBlocks = "p, h2, h3, h4, h5, h6, li, blockquote, figcaption"

// noise is removed from the body before it is rendered.
const noise = "script, style, noscript, iframe, form, nav, aside, .share, .social, .advertisement"

var bylinePrefixes = []string{"von ", "by ", "autor: ", "author: "}

// Extractor implements ports.ArticleExtractor on top of a Fetcher and a
// selector registry.
type Extractor struct {
	fetcher   *Fetcher
	selectors *selector.Registry
	defaults  domain.ExtractOptions
	policy    *bluemonday.Policy
	now       func() time.Time
	logger    *slog.Logger
}

var _ ports.ArticleExtractor = (*Extractor)(nil)

// NewExtractor wires the fetcher with selector tables. Zero defaults mean
// three attempts with a one second base delay.
func NewExtractor(fetcher *Fetcher, selectors *selector.Registry, defaults domain.ExtractOptions, logger *slog.Logger) *Extractor {
	if selectors == nil {
		selectors = selector.NewRegistry(nil)
	}
	if defaults.MaxAttempts <= 0 {
		defaults.MaxAttempts = defaultMaxAttempts
	}
	if defaults.BaseDelay <= 0 {
		defaults.BaseDelay = defaultBaseDelay
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{
		fetcher:   fetcher,
		selectors: selectors,
		defaults:  defaults,
		policy:    bluemonday.UGCPolicy(),
		now:       time.Now,
		logger:    logger,
	}
}

// Extract fetches link and builds an Article. A page without title or body
// yields an error wrapping domain.ErrInsufficientContent; fetch failures are
// returned as *domain.FetchError.
func (e *Extractor) Extract(ctx context.Context, link domain.ArticleLink, opts domain.ExtractOptions) (domain.Article, error) {
	if e.fetcher == nil {
		return domain.Article{}, fmt.Errorf("extractor fetcher: %w", domain.ErrNotInitialized)
	}

	target, err := parseLink(link.URL)
	if err != nil {
		return domain.Article{}, err
	}

	attempts, base := e.defaults.MaxAttempts, e.defaults.BaseDelay
	if opts.MaxAttempts > 0 {
		attempts = opts.MaxAttempts
	}
	if opts.BaseDelay > 0 {
		base = opts.BaseDelay
	}

	doc, err := e.fetcher.Fetch(ctx, target, attempts, base)
	if err != nil {
		return domain.Article{}, err
	}
	if doc.Url == nil {
		doc.Url = target
	}

	article, err := e.build(doc, link)
	if err != nil {
		return domain.Article{}, err
	}
	e.logger.Debug("article extracted",
		"url", link.URL,
		"id", article.ID,
		"words", article.Content.WordCount,
		"images", len(article.Images.Gallery)+boolToInt(article.Images.HasImage()),
	)
	return article, nil
}

func parseLink(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLink, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLink, raw)
	}
	return u, nil
}

// build turns a parsed document into an Article. It never touches the network.
func (e *Extractor) build(doc *goquery.Document, link domain.ArticleLink) (domain.Article, error) {
	table := e.selectors.Resolve(doc.Url.Hostname())
	scrapedAt := e.now().UTC()

	title := firstNonEmpty(table.First(doc, selector.FieldTitle), strings.TrimSpace(link.Title))
	if title == "" {
		return domain.Article{}, fmt.Errorf("%s: no title: %w", link.URL, domain.ErrInsufficientContent)
	}

	images := extractImages(doc, table)

	bodyHTML, text := e.extractBody(doc, table)
	if text == "" {
		return domain.Article{}, fmt.Errorf("%s: no body text: %w", link.URL, domain.ErrInsufficientContent)
	}

	subtitle := table.First(doc, selector.FieldSubtitle)
	if subtitle == title {
		subtitle = ""
	}

	category := firstNonEmpty(table.First(doc, selector.FieldCategory), strings.TrimSpace(link.Category), generalBucket)
	tags := table.All(doc, selector.FieldTags)
	tags = uniqueCapped(tags, len(tags))
	d := deriveMetadata(title, text, category, tags, images)

	return domain.Article{
		ID:          domain.ArticleID(link.URL),
		Title:       norm.NFC.String(title),
		Subtitle:    norm.NFC.String(subtitle),
		Author:      firstNonEmpty(cleanByline(table.First(doc, selector.FieldAuthor)), defaultAuthorName),
		PublishedAt: publishedAt(table.First(doc, selector.FieldPublished), link.PublishedAt, scrapedAt),
		Category:    category,
		Tags:        tags,
		Content: domain.ArticleContent{
			HTML:      bodyHTML,
			Text:      text,
			Summary:   d.summary,
			WordCount: d.wordCount,
		},
		Images:   images,
		Metadata: d.metadata,
		Social:   d.social,
		Source: domain.SourceInfo{
			URL:       link.URL,
			ScrapedAt: scrapedAt,
			Quality:   d.quality,
		},
	}, nil
}

// extractBody returns the sanitized HTML fragment and the paragraph-preserving
// plain text of the winning body rule.
func (e *Extractor) extractBody(doc *goquery.Document, table selector.Table) (string, string) {
	m, ok := table.Apply(doc, selector.FieldBody)
	if !ok {
		return "", ""
	}
	// noise is stripped from a detached copy; other fields still read the page.
	node := m.Nodes.First().Clone()
	node.Find(noise).Remove()

	raw, err := node.Html()
	if err != nil {
		raw = ""
	}

	var paragraphs []string
	node.Find(textBlocks).Each(func(_ int, s *goquery.Selection) {
		// nested blocks (li > p) are visited on their own
		if s.Find(textBlocks).Length() > 0 {
			return
		}
		if p := textkit.NormalizeSpace(s.Text()); p != "" {
			paragraphs = append(paragraphs, p)
		}
	})

	text := strings.Join(paragraphs, "\n\n")
	if text == "" {
		text = textkit.NormalizeSpace(node.Text())
	}
	if text == "" {
		text = m.First()
	}
	return strings.TrimSpace(e.policy.Sanitize(raw)), norm.NFC.String(text)
}

// extractImages absolutizes image URLs against the page (or its <base href>),
// drops duplicates and data URIs, and splits featured from gallery.
func extractImages(doc *goquery.Document, table selector.Table) domain.ArticleImages {
	images := domain.ArticleImages{Gallery: []string{}, AltTexts: []string{}}

	m, ok := table.Apply(doc, selector.FieldImages)
	if !ok {
		return images
	}

	base := doc.Url
	if href, exists := doc.Find("base[href]").First().Attr("href"); exists {
		if resolved, err := doc.Url.Parse(strings.TrimSpace(href)); err == nil {
			base = resolved
		}
	}

	seen := map[string]struct{}{}
	m.Nodes.Each(func(i int, s *goquery.Selection) {
		if i >= len(m.Values) {
			return
		}
		raw := m.Values[i]
		if strings.HasPrefix(raw, "data:") {
			return
		}
		abs, err := base.Parse(raw)
		if err != nil || (abs.Scheme != "http" && abs.Scheme != "https") {
			return
		}
		u := abs.String()
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}

		if images.Featured == "" {
			images.Featured = u
		} else {
			images.Gallery = append(images.Gallery, u)
		}
		images.AltTexts = append(images.AltTexts, strings.TrimSpace(s.AttrOr("alt", "")))
	})
	return images
}

func publishedAt(raw string, hint *time.Time, fallback time.Time) time.Time {
	if raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t.UTC()
		}
	}
	if hint != nil && !hint.IsZero() {
		return hint.UTC()
	}
	return fallback
}

func cleanByline(value string) string {
	lower := strings.ToLower(value)
	for _, prefix := range bylinePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(value[len(prefix):])
		}
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
