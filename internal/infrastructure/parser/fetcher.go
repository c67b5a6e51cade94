package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/metrics"
)

const (
	defaultUserAgent    = "StudiFlowContentPipeline/1.0"
	defaultTimeout      = 20 * time.Second
	defaultMaxBodyBytes = 5 << 20
	maxBackoffShift     = 30
)

// FetcherConfig tunes the HTTP side of the extractor.
type FetcherConfig struct {
	UserAgent     string
	Timeout       time.Duration
	HostInterval  time.Duration
	MaxDelay      time.Duration
	MaxBodyBytes  int64
	RespectRobots bool
}

// Fetcher downloads and parses pages, retrying transient failures.
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *HostLimiter
	robots    *robotsGate
	maxBody   int64
	maxDelay  time.Duration
	sleep     func(context.Context, time.Duration) error
	logger    *slog.Logger
}

// NewFetcher wires an HTTP client; a nil client gets a 20s timeout.
func NewFetcher(client *http.Client, cfg FetcherConfig, logger *slog.Logger) *Fetcher {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f := &Fetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		limiter:   NewHostLimiter(cfg.HostInterval),
		maxBody:   cfg.MaxBodyBytes,
		maxDelay:  cfg.MaxDelay,
		sleep:     sleepContext,
		logger:    logger,
	}
	if cfg.RespectRobots {
		f.robots = newRobotsGate(client, cfg.UserAgent)
	}
	return f
}

// statusError is a non-2xx response.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.status)
}

// Fetch downloads target with up to maxAttempts attempts. After failed
// attempt n the loop waits base*2^n before trying again; there is no wait
// after the last attempt. Non-retryable failures end the loop early.
func (f *Fetcher) Fetch(ctx context.Context, target *url.URL, maxAttempts int, base time.Duration) (*goquery.Document, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if f.robots != nil && !f.robots.Allowed(ctx, target) {
		return nil, fmt.Errorf("%s: %w", target, domain.ErrDisallowedByRobots)
	}

	var (
		lastErr error
		status  int
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		doc, err := f.attempt(ctx, target)
		if err == nil {
			metrics.RecordFetchAttempt(metrics.ResultSuccess)
			return doc, nil
		}
		metrics.RecordFetchAttempt(metrics.ResultError)

		lastErr, status = err, 0
		var se *statusError
		if errors.As(err, &se) {
			status = se.code
		}

		if !retryable(ctx, err) {
			return nil, &domain.FetchError{URL: target.String(), Attempts: attempt, StatusCode: status, Err: err}
		}
		if attempt == maxAttempts {
			break
		}

		delay := f.backoff(base, attempt)
		f.logger.Warn("fetch attempt failed",
			"url", target.String(),
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"retry_in", delay,
			"error", err,
		)
		if err := f.sleep(ctx, delay); err != nil {
			return nil, &domain.FetchError{URL: target.String(), Attempts: attempt, StatusCode: status, Err: err}
		}
	}

	return nil, &domain.FetchError{URL: target.String(), Attempts: maxAttempts, StatusCode: status, Err: lastErr}
}

func (f *Fetcher) attempt(ctx context.Context, target *url.URL) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx, target.Host); err != nil {
		return nil, fmt.Errorf("wait for host: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBody), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// backoff returns base*2^attempt, capped by maxDelay when set.
func (f *Fetcher) backoff(base time.Duration, attempt int) time.Duration {
	shift := min(attempt, maxBackoffShift)
	factor := time.Duration(1) << shift
	if base > 0 && base > math.MaxInt64/factor {
		// saturate instead of wrapping into a negative delay
		if f.maxDelay > 0 {
			return f.maxDelay
		}
		return math.MaxInt64
	}
	delay := base * factor
	if f.maxDelay > 0 && delay > f.maxDelay {
		return f.maxDelay
	}
	return delay
}

// retryable reports whether a failed attempt is worth repeating: transport
// errors, 5xx, 408 and 429 are; other statuses and cancellation are not.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError ||
			se.code == http.StatusRequestTimeout ||
			se.code == http.StatusTooManyRequests
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
