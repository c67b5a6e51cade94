package domain

import "time"

// TemplateType tags the visual structure of a reel template.
type TemplateType string

const (
	TemplateQuote        TemplateType = "quote"
	TemplateSlideshow    TemplateType = "slideshow"
	TemplateTextOverlay  TemplateType = "text_overlay"
	TemplateAnimatedText TemplateType = "animated_text"
	TemplateCustom       TemplateType = "custom"
)

// ReelTemplate is a named pattern understood by the rendering provider.
type ReelTemplate struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Type        TemplateType `json:"type" yaml:"type"`
	SuitableFor []string     `json:"suitableFor" yaml:"suitableFor"`
	PreviewURL  string       `json:"previewUrl,omitempty" yaml:"previewUrl"`
}

// ReelOptions controls a single reel generation. Empty TemplateID lets the
// generator pick a built-in template.
type ReelOptions struct {
	TemplateID   string
	Quality      string
	AspectRatio  string
	OutputFormat string
	FPS          int
	Duration     float64
	AudioURL     string
}

// RenderRequest is sent to the video rendering provider.
type RenderRequest struct {
	TemplateID    string         `json:"templateId"`
	Modifications map[string]any `json:"modifications"`
	OutputFormat  string         `json:"outputFormat,omitempty"`
	Width         int            `json:"width,omitempty"`
	Height        int            `json:"height,omitempty"`
	FPS           int            `json:"fps,omitempty"`
	Quality       string         `json:"quality,omitempty"`
}

// RenderResult is returned by the video rendering provider.
type RenderResult struct {
	ID           string  `json:"id"`
	URL          string  `json:"url"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Duration     float64 `json:"duration"`
	Format       string  `json:"format"`
	Size         int64   `json:"size"`
}

// GeneratedReel is a rendered video built from an Article or a ModifiedContent.
type GeneratedReel struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"articleId,omitempty"`
	ContentID    string    `json:"contentId,omitempty"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Duration     float64   `json:"duration"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Format       string    `json:"format"`
	Size         int64     `json:"size"`
	TemplateID   string    `json:"templateId"`
	CreatedAt    time.Time `json:"createdAt"`
}
