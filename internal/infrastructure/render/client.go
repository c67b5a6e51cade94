package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

const (
	rendersPath  = "/renders"
	maxErrorBody = 1024
)

// ProviderError is returned for non-2xx responses of the rendering service.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("render provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("render provider returned status %d: %s", e.StatusCode, e.Body)
}

// Client talks to an external video rendering service.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.RenderProvider = (*Client)(nil)

// NewClient creates a reusable HTTP client. A zero timeout means 60 seconds.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// Render submits one render request and waits for the provider's answer.
func (c *Client) Render(ctx context.Context, request domain.RenderRequest) (domain.RenderResult, error) {
	if c.endpoint == "" {
		return domain.RenderResult{}, fmt.Errorf("render endpoint: %w", domain.ErrNotInitialized)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return domain.RenderResult{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+rendersPath, bytes.NewReader(body))
	if err != nil {
		return domain.RenderResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RenderResult{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.RenderResult{}, &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var result domain.RenderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.RenderResult{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
