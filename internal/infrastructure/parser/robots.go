package parser

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

const robotsMaxBytes = 512 << 10

// robotsGate answers robots.txt checks, caching one ruleset per host.
// Hosts whose robots.txt cannot be fetched are treated as allowing everything.
type robotsGate struct {
	client *http.Client
	agent  string

	mu    sync.Mutex
	rules map[string]*robotstxt.RobotsData
}

func newRobotsGate(client *http.Client, agent string) *robotsGate {
	return &robotsGate{client: client, agent: agent, rules: map[string]*robotstxt.RobotsData{}}
}

func (g *robotsGate) Allowed(ctx context.Context, target *url.URL) bool {
	data := g.load(ctx, target)
	if data == nil {
		return true
	}
	path := target.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, g.agent)
}

func (g *robotsGate) load(ctx context.Context, target *url.URL) *robotstxt.RobotsData {
	key := target.Scheme + "://" + target.Host

	g.mu.Lock()
	data, ok := g.rules[key]
	g.mu.Unlock()
	if ok {
		return data
	}

	data = g.fetch(ctx, key+"/robots.txt")

	g.mu.Lock()
	g.rules[key] = data
	g.mu.Unlock()
	return data
}

func (g *robotsGate) fetch(ctx context.Context, robotsURL string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", g.agent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, robotsMaxBytes))
	if err != nil {
		return nil
	}
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil
	}
	return data
}
