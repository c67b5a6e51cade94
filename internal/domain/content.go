package domain

import (
	"fmt"
	"time"
)

// Format is a target social media format.
type Format string

const (
	FormatPost     Format = "post"
	FormatStory    Format = "story"
	FormatReel     Format = "reel"
	FormatCarousel Format = "carousel"
)

// Formats lists every supported format in canonical order.
var Formats = []Format{FormatPost, FormatStory, FormatReel, FormatCarousel}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	for _, f := range Formats {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
}

// Tone selects the hook template used by the adapter.
type Tone string

const (
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	ToneMotivational Tone = "motivational"
	ToneEducational  Tone = "educational"
)

// AdaptOptions controls a single adaptation.
type AdaptOptions struct {
	TargetFormat        Format
	MaxLength           int
	IncludeHashtags     bool
	IncludeCallToAction bool
	Tone                Tone
	TargetAudience      string
}

// ModifiedContent is one format-specific rendering of an Article.
// Every adaptation yields a new value with a new ID.
type ModifiedContent struct {
	ID                string           `json:"id"`
	OriginalArticleID string           `json:"originalArticleId"`
	Format            Format           `json:"format"`
	Content           AdaptedBody      `json:"content"`
	Metadata          ContentMetadata  `json:"metadata"`
	Publication       PublicationState `json:"publication"`
}

// AdaptedBody is the composed text and media of a ModifiedContent.
type AdaptedBody struct {
	Text     string   `json:"text"`
	Images   []string `json:"images"`
	Captions []string `json:"captions"`
}

// ContentMetadata records how the content was generated.
type ContentMetadata struct {
	CreatedAt           time.Time `json:"createdAt"`
	SourceURL           string    `json:"sourceUrl"`
	Tone                Tone      `json:"tone"`
	TargetAudience      string    `json:"targetAudience"`
	IncludeHashtags     bool      `json:"includeHashtags"`
	IncludeCallToAction bool      `json:"includeCallToAction"`
	Hashtags            []string  `json:"hashtags"`
}

// PublicationState is filled by the publication layer after adaptation.
type PublicationState struct {
	Ready       bool         `json:"ready"`
	ScheduledAt *time.Time   `json:"scheduledAt,omitempty"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	Performance *Performance `json:"performance,omitempty"`
}

// Performance counters are only known after real publication.
type Performance struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Shares   int64 `json:"shares"`
	Comments int64 `json:"comments"`
}
