package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInsufficientContent marks a page without a usable title or body.
	ErrInsufficientContent = errors.New("insufficient content")
	// ErrInvalidLink is returned for URLs that cannot be fetched at all.
	ErrInvalidLink = errors.New("invalid article link")
	// ErrDisallowedByRobots is returned when robots.txt forbids the path.
	ErrDisallowedByRobots = errors.New("disallowed by robots.txt")
	// ErrUnsupportedFormat is returned for unknown target formats.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrTemplateNotFound is returned when a pinned template id is unknown.
	ErrTemplateNotFound = errors.New("reel template not found")
	// ErrDuplicateTemplate is returned when a template id is registered twice.
	ErrDuplicateTemplate = errors.New("reel template already registered")
	// ErrNotInitialized is returned by services used before they are wired.
	ErrNotInitialized = errors.New("service not initialized")
)

// ExtractOptions tunes the fetch retry loop of a single extraction.
// Zero values fall back to the extractor defaults.
type ExtractOptions struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// FetchError reports a fetch that failed for good, either because retries
// were exhausted or because the response was not worth retrying.
type FetchError struct {
	URL        string
	Attempts   int
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RenderError wraps a provider failure with the id of the rendered source.
type RenderError struct {
	SourceID   string
	TemplateID string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s with template %s: %v", e.SourceID, e.TemplateID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// OutcomeOf maps the error returned by an extraction to its outcome.
// Malformed links are skipped: retrying them can never succeed.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeExtracted
	case errors.Is(err, ErrInsufficientContent), errors.Is(err, ErrDisallowedByRobots), errors.Is(err, ErrInvalidLink):
		return OutcomeSkipped
	default:
		return OutcomeFailed
	}
}
