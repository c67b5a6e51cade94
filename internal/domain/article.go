package domain

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// ArticleLink is a candidate page supplied by the link source.
type ArticleLink struct {
	URL         string     `json:"url" yaml:"url"`
	Title       string     `json:"title,omitempty" yaml:"title"`
	Category    string     `json:"category,omitempty" yaml:"category"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" yaml:"publishedAt"`
}

// Difficulty grades how demanding an article's vocabulary is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// QualityTier is a coarse score of the scraped page.
type QualityTier string

const (
	QualityHigh   QualityTier = "high"
	QualityMedium QualityTier = "medium"
	QualityLow    QualityTier = "low"
)

// Article is the normalized representation of one source page.
// Values are never mutated after the extractor returns them.
type Article struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Author      string          `json:"author"`
	PublishedAt time.Time       `json:"publishedAt"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Content     ArticleContent  `json:"content"`
	Images      ArticleImages   `json:"images"`
	Metadata    ArticleMetadata `json:"metadata"`
	Social      SocialMetadata  `json:"social"`
	Source      SourceInfo      `json:"source"`
}

// ArticleContent holds the body in its different renderings.
type ArticleContent struct {
	HTML      string `json:"html"`
	Text      string `json:"text"`
	Summary   string `json:"summary"`
	WordCount int    `json:"wordCount"`
}

// ArticleImages keeps the featured image apart from the gallery.
// AltTexts runs parallel to Featured followed by Gallery.
type ArticleImages struct {
	Featured string   `json:"featured,omitempty"`
	Gallery  []string `json:"gallery"`
	AltTexts []string `json:"altTexts"`
}

// HasImage reports whether at least one image was discovered.
func (i ArticleImages) HasImage() bool {
	return i.Featured != ""
}

// All returns the featured image followed by the gallery.
func (i ArticleImages) All() []string {
	if i.Featured == "" {
		return append([]string(nil), i.Gallery...)
	}
	out := make([]string, 0, len(i.Gallery)+1)
	out = append(out, i.Featured)
	return append(out, i.Gallery...)
}

// ArticleMetadata is derived from the extracted text only.
type ArticleMetadata struct {
	ReadTime   int        `json:"readTime"`
	Difficulty Difficulty `json:"difficulty"`
	StudyArea  string     `json:"studyArea"`
	Semester   int        `json:"semester,omitempty"`
}

// SocialMetadata describes how well the article fits short-form channels.
type SocialMetadata struct {
	Adaptable        bool     `json:"adaptable"`
	SuggestedFormats []Format `json:"suggestedFormats"`
	Hashtags         []string `json:"hashtags"`
	KeyQuotes        []string `json:"keyQuotes"`
}

// SourceInfo records where and when the article was scraped.
type SourceInfo struct {
	URL       string      `json:"url"`
	ScrapedAt time.Time   `json:"scrapedAt"`
	Quality   QualityTier `json:"quality"`
}

// ArticleID derives the stable identifier of a source URL.
func ArticleID(rawURL string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(rawURL)))
	return fmt.Sprintf("%x", h[:8])
}

// Outcome classifies a single extraction.
type Outcome string

const (
	OutcomeExtracted Outcome = "extracted"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// ProcessedRecord is persisted for idempotent re-processing and audit.
type ProcessedRecord struct {
	ArticleID   string
	URL         string
	Title       string
	Outcome     Outcome
	Reason      string
	ProcessedAt time.Time
}

// Report summarizes a single pipeline run.
type Report struct {
	Links     int
	Already   int
	Extracted int
	Skipped   int
	Failed    int
	Contents  int
	Reels     int
	Failures  []string
}
