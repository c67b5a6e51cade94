package reel

import (
	"strings"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/textkit"
)

const (
	maxPayloadQuotes   = 3
	summaryLimit       = 200
	quoteMinLen        = 20
	quoteMaxLen        = 200
	articleOverlayMin  = 1000
	contentOverlayMin  = 500
	slideshowMinImages = 2
)

// Branding is attached unchanged to every render request.
type Branding struct {
	LogoURL    string `yaml:"logoUrl"`
	BrandName  string `yaml:"brandName"`
	BrandColor string `yaml:"brandColor"`
}

// source is the common view of an article or an adapted content that the
// payload and the template heuristic are built from.
type source struct {
	id       string
	title    string
	subtitle string
	author   string
	category string
	text     string
	quotes   []string
	hashtags []string
	images   []string
	gallery  int
}

func fromArticle(a domain.Article) source {
	return source{
		id:       a.ID,
		title:    a.Title,
		subtitle: a.Subtitle,
		author:   a.Author,
		category: a.Category,
		text:     a.Content.Text,
		quotes:   a.Social.KeyQuotes,
		hashtags: a.Social.Hashtags,
		images:   a.Images.All(),
		gallery:  len(a.Images.Gallery),
	}
}

func fromContent(c domain.ModifiedContent) source {
	text := c.Content.Text
	title, _, _ := strings.Cut(text, "\n")
	return source{
		id:       c.ID,
		title:    strings.TrimSpace(title),
		text:     text,
		quotes:   textkit.QuotedSpans(text, quoteMinLen, quoteMaxLen),
		hashtags: c.Metadata.Hashtags,
		images:   c.Content.Images,
		gallery:  max(len(c.Content.Images)-1, 0),
	}
}

// selectType applies the built-in heuristic: quotes, then galleries, then
// long text, then animated text.
func selectType(src source, overlayMin int) domain.TemplateType {
	switch {
	case len(src.quotes) > 0:
		return domain.TemplateQuote
	case src.gallery > slideshowMinImages:
		return domain.TemplateSlideshow
	case textkit.Len(src.text) > overlayMin:
		return domain.TemplateTextOverlay
	default:
		return domain.TemplateAnimatedText
	}
}

// modifications builds the provider-agnostic payload for src.
func modifications(src source, opts domain.ReelOptions, brand Branding) map[string]any {
	mods := map[string]any{
		"title": src.title,
	}
	setIf(mods, "subtitle", src.subtitle)
	setIf(mods, "author", src.author)
	setIf(mods, "category", src.category)

	if len(src.quotes) > 0 {
		mods["quotes"] = append([]string{}, src.quotes[:min(maxPayloadQuotes, len(src.quotes))]...)
	} else {
		mods["summary"] = textkit.Summarize(src.text, summaryLimit)
	}

	mods["hashtags"] = append([]string{}, src.hashtags...)

	images := make([]map[string]any, len(src.images))
	for i, u := range src.images {
		images[i] = map[string]any{"url": u, "featured": i == 0}
	}
	mods["images"] = images

	setIf(mods, "audio", opts.AudioURL)
	if opts.Duration > 0 {
		mods["duration"] = opts.Duration
	}

	mods["branding"] = map[string]any{
		"logoUrl":    brand.LogoURL,
		"brandName":  brand.BrandName,
		"brandColor": brand.BrandColor,
	}
	return mods
}

func setIf(mods map[string]any, key, value string) {
	if value != "" {
		mods[key] = value
	}
}
