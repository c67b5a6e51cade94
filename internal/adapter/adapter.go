// Package adapter turns extracted articles into format-specific social media
// bundles. It performs no I/O; identical inputs give identical text and
// images, while every call yields a fresh content id.
package adapter

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/textkit"
)

const (
	defaultMaxLength = 2200
	postReserve      = 200
	storyTitleMax    = 50
	storyPoints      = 3
	reelSummaryMax   = 100
	carouselIntroMax = 150
	carouselPoints   = 5
	maxImages        = 10

	postTags     = 10
	storyTags    = 5
	reelTags     = 8
	carouselTags = 10

	swipePrompt = "👉 Wische für mehr"
	bullet      = "• "
)

var hooks = map[domain.Tone]string{
	domain.ToneCasual:       "Hey! 👋 Kennst du das schon? %s",
	domain.ToneProfessional: "Neuer Beitrag: %s",
	domain.ToneMotivational: "💪 Zeit, durchzustarten: %s",
	domain.ToneEducational:  "📚 Wusstest du? %s",
}

const defaultHook = "📰 %s"

var callsToAction = map[string]string{
	"students":      "👉 Den ganzen Artikel findest du über den Link in der Bio!",
	"professionals": "🔗 Den vollständigen Beitrag gibt es im Link in der Bio.",
	"general":       "💬 Was denkst du? Schreib es in die Kommentare!",
}

// Adapter implements ports.ContentAdapter.
type Adapter struct {
	now       func() time.Time
	lastStamp atomic.Int64
}

var _ ports.ContentAdapter = (*Adapter)(nil)

// New returns an adapter using the wall clock.
func New() *Adapter {
	return &Adapter{now: time.Now}
}

// Adapt composes article into the requested format. Only an unknown target
// format is an error.
func (a *Adapter) Adapt(article domain.Article, opts domain.AdaptOptions) (domain.ModifiedContent, error) {
	if opts.MaxLength <= 0 {
		opts.MaxLength = defaultMaxLength
	}

	var (
		body domain.AdaptedBody
		tags []string
	)
	switch opts.TargetFormat {
	case domain.FormatPost:
		body, tags = composePost(article, opts)
	case domain.FormatStory:
		body, tags = composeStory(article, opts)
	case domain.FormatReel:
		body, tags = composeReel(article, opts)
	case domain.FormatCarousel:
		body, tags = composeCarousel(article, opts)
	default:
		return domain.ModifiedContent{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, opts.TargetFormat)
	}
	body.Images = images(article)

	stamp := a.nextStamp()
	return domain.ModifiedContent{
		ID:                fmt.Sprintf("%s_%s_%d", article.ID, opts.TargetFormat, stamp),
		OriginalArticleID: article.ID,
		Format:            opts.TargetFormat,
		Content:           body,
		Metadata: domain.ContentMetadata{
			CreatedAt:           time.UnixMilli(stamp).UTC(),
			SourceURL:           article.Source.URL,
			Tone:                opts.Tone,
			TargetAudience:      opts.TargetAudience,
			IncludeHashtags:     opts.IncludeHashtags,
			IncludeCallToAction: opts.IncludeCallToAction,
			Hashtags:            tags,
		},
		Publication: domain.PublicationState{Ready: true},
	}, nil
}

// nextStamp returns the current unix millisecond, bumped past the previous
// stamp so ids stay unique within one adapter.
func (a *Adapter) nextStamp() int64 {
	for {
		last := a.lastStamp.Load()
		next := max(a.now().UnixMilli(), last+1)
		if a.lastStamp.CompareAndSwap(last, next) {
			return next
		}
	}
}

func composePost(article domain.Article, opts domain.AdaptOptions) (domain.AdaptedBody, []string) {
	parts := []string{hook(opts.Tone, article.Title)}
	if summary := textkit.Summarize(article.Content.Text, opts.MaxLength-postReserve); summary != "" {
		parts = append(parts, summary)
	}
	if opts.IncludeCallToAction {
		parts = append(parts, callToAction(opts.TargetAudience))
	}
	tags := topTags(article, opts, postTags)
	if len(tags) > 0 {
		parts = append(parts, formatTags(tags))
	}
	return domain.AdaptedBody{Text: join(parts), Captions: []string{}}, tags
}

func composeStory(article domain.Article, opts domain.AdaptOptions) (domain.AdaptedBody, []string) {
	parts := []string{textkit.Truncate(article.Title, storyTitleMax)}

	points := textkit.KeyPoints(article.Content.Text, storyPoints)
	if len(points) > 0 {
		lines := make([]string, len(points))
		for i, p := range points {
			lines[i] = bullet + p
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	tags := topTags(article, opts, storyTags)
	if len(tags) > 0 {
		parts = append(parts, formatTags(tags))
	}
	return domain.AdaptedBody{Text: join(parts), Captions: []string{}}, tags
}

func composeReel(article domain.Article, opts domain.AdaptOptions) (domain.AdaptedBody, []string) {
	parts := []string{hook(domain.ToneMotivational, article.Title)}
	if len(article.Social.KeyQuotes) > 0 {
		parts = append(parts, `"`+article.Social.KeyQuotes[0]+`"`)
	} else if summary := textkit.Summarize(article.Content.Text, reelSummaryMax); summary != "" {
		parts = append(parts, summary)
	}
	if opts.IncludeCallToAction {
		parts = append(parts, callToAction(opts.TargetAudience))
	}
	tags := topTags(article, opts, reelTags)
	if len(tags) > 0 {
		parts = append(parts, formatTags(tags))
	}
	return domain.AdaptedBody{Text: join(parts), Captions: []string{}}, tags
}

func composeCarousel(article domain.Article, opts domain.AdaptOptions) (domain.AdaptedBody, []string) {
	parts := []string{hook(opts.Tone, article.Title)}
	if intro := textkit.Summarize(article.Content.Text, carouselIntroMax); intro != "" {
		parts = append(parts, intro)
	}
	parts = append(parts, swipePrompt)
	cta := callToAction(opts.TargetAudience)
	if opts.IncludeCallToAction {
		parts = append(parts, cta)
	}
	tags := topTags(article, opts, carouselTags)
	if len(tags) > 0 {
		parts = append(parts, formatTags(tags))
	}

	points := textkit.KeyPoints(article.Content.Text, carouselPoints)
	// The closing slide always carries the CTA; the flag only gates the main text.
	total := len(points) + 1
	captions := make([]string, 0, total)
	for i, p := range points {
		captions = append(captions, fmt.Sprintf("%d/%d: %s", i+1, total, p))
	}
	captions = append(captions, fmt.Sprintf("%d/%d: %s", total, total, cta))

	return domain.AdaptedBody{Text: join(parts), Captions: captions}, tags
}

func hook(tone domain.Tone, title string) string {
	tmpl, ok := hooks[tone]
	if !ok {
		tmpl = defaultHook
	}
	return fmt.Sprintf(tmpl, title)
}

func callToAction(audience string) string {
	if cta, ok := callsToAction[strings.ToLower(audience)]; ok {
		return cta
	}
	return callsToAction["general"]
}

func topTags(article domain.Article, opts domain.AdaptOptions, n int) []string {
	if !opts.IncludeHashtags {
		return []string{}
	}
	tags := article.Social.Hashtags
	return append([]string{}, tags[:min(n, len(tags))]...)
}

func formatTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func images(article domain.Article) []string {
	all := article.Images.All()
	return all[:min(maxImages, len(all))]
}

func join(parts []string) string {
	return strings.Join(parts, "\n\n")
}
