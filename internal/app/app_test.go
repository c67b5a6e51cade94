package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/config"
)

const page = `<html><body><article>
<h1 class="entry-title">Prüfungsphase ohne Stress</h1>
<div class="entry-content">
<p>Die Prüfungsphase muss kein Albtraum sein. Mit einem klaren Plan geht vieles leichter.</p>
<img src="https://cdn.example.org/cover.jpg" alt="Cover">
<p>Wichtig ist, jeden Tag eine feste Lernzeit einzuplanen.</p>
<p>Mein Tipp: Lerne in Gruppen und erkläre dir den Stoff gegenseitig.</p>
</div>
</article></body></html>`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONTENT_PIPELINE_CONFIG", "DATABASE_DSN", "RENDER_API_KEY", "RENDER_ENDPOINT", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func loadConfig(t *testing.T, yaml string) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestApplicationRunEndToEnd(t *testing.T) {
	clearEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blog/pruefungsphase" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	cfg := loadConfig(t, fmt.Sprintf(`
extractor:
  maxAttempts: 1
  hostInterval: 1ms
adapter:
  formats: [post, story]
reel:
  enabled: true
links:
  urls:
    - url: %[1]s/blog/pruefungsphase
    - url: %[1]s/blog/missing
output:
  path: %[2]s
`, server.URL, outPath))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application, err := New(context.Background(), cfg, Options{DryRun: true}, logger)
	require.NoError(t, err)

	report, err := application.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, application.Close())

	assert.Equal(t, 2, report.Links)
	assert.Equal(t, 1, report.Extracted)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Contents)
	assert.Equal(t, 1, report.Reels)

	file, err := os.Open(outPath)
	require.NoError(t, err)
	defer file.Close()

	kinds := map[string]int{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var rec struct {
			Kind string `json:"kind"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		kinds[rec.Kind]++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, map[string]int{"content": 2, "reel": 1}, kinds)
}

func TestApplicationRejectsDuplicateTemplates(t *testing.T) {
	clearEnv(t)
	cfg := loadConfig(t, `
reel:
  enabled: true
  templates:
    - id: quote-reel
      name: Doppelt
output:
  path: `+filepath.Join(t.TempDir(), "out.jsonl")+`
`)

	_, err := New(context.Background(), cfg, Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestServeRequiresCronExpression(t *testing.T) {
	clearEnv(t)
	cfg := loadConfig(t, "scheduler:\n  cronExpression: \"\"\noutput:\n  path: "+filepath.Join(t.TempDir(), "out.jsonl")+"\n")

	application, err := New(context.Background(), cfg, Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer application.Close()

	require.Error(t, application.Serve(context.Background()))
}
