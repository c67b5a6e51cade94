package linksource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLinksFromYAMLList(t *testing.T) {
	path := writeFile(t, "links.yaml", `
- url: https://blog.example.org/a
  title: Erster Beitrag
  category: Studium
  publishedAt: 2025-03-14T09:30:00Z
- url: https://blog.example.org/b
`)

	links, err := New(path, nil, nil).Links(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, "Erster Beitrag", links[0].Title)
	assert.Equal(t, "Studium", links[0].Category)
	require.NotNil(t, links[0].PublishedAt)
	assert.True(t, links[0].PublishedAt.Equal(time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)))
	assert.Nil(t, links[1].PublishedAt)
}

func TestLinksFromYAMLMapping(t *testing.T) {
	path := writeFile(t, "links.yml", "links:\n  - url: https://blog.example.org/a\n")

	links, err := New(path, nil, nil).Links(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://blog.example.org/a", links[0].URL)
}

func TestLinksFromPlainFileWithStaticLinks(t *testing.T) {
	path := writeFile(t, "links.txt", `
# Campus-Blog
https://blog.example.org/a
  https://blog.example.org/a
ftp://files.example.org/x
not a url

https://blog.example.org/c
`)
	static := []domain.ArticleLink{
		{URL: "https://blog.example.org/c", Title: "dupe"},
		{URL: "https://blog.example.org/d", Category: "Karriere"},
	}

	links, err := New(path, static, nil).Links(context.Background())
	require.NoError(t, err)

	var urls []string
	for _, l := range links {
		urls = append(urls, l.URL)
	}
	assert.Equal(t, []string{
		"https://blog.example.org/a",
		"https://blog.example.org/c",
		"https://blog.example.org/d",
	}, urls)
	assert.Equal(t, "Karriere", links[2].Category)
}

func TestLinksWithoutFile(t *testing.T) {
	links, err := New("", []domain.ArticleLink{{URL: "https://blog.example.org/x"}}, nil).Links(context.Background())
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestLinksMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil).Links(context.Background())
	require.Error(t, err)
}

func TestLinksMalformedYAML(t *testing.T) {
	path := writeFile(t, "links.yaml", "links: [unclosed")
	_, err := New(path, nil, nil).Links(context.Background())
	require.Error(t, err)
}
