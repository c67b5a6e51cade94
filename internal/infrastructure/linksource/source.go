// Package linksource supplies ArticleLinks from a links file and from links
// listed directly in the configuration.
package linksource

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

// Source implements ports.LinkSource.
type Source struct {
	path   string
	static []domain.ArticleLink
	logger *slog.Logger
}

var _ ports.LinkSource = (*Source)(nil)

// New wires a source reading path (may be empty) plus static links.
//
// Files ending in .yaml or .yml hold either a list of links or a mapping with
// a "links" key. Any other file is read as one URL per line; blank lines and
// lines starting with '#' are ignored.
func New(path string, static []domain.ArticleLink, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{
		path:   path,
		static: static,
		logger: logger.With("component", "linksource"),
	}
}

// Links returns the valid links in file order followed by the static ones.
// Duplicates by article id and invalid URLs are dropped.
func (s *Source) Links(ctx context.Context) ([]domain.ArticleLink, error) {
	var candidates []domain.ArticleLink
	if s.path != "" {
		fromFile, err := readFile(s.path)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("links file loaded", "path", s.path, "count", len(fromFile))
		candidates = append(candidates, fromFile...)
	}
	candidates = append(candidates, s.static...)

	seen := make(map[string]struct{}, len(candidates))
	links := make([]domain.ArticleLink, 0, len(candidates))
	for _, link := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		link.URL = strings.TrimSpace(link.URL)
		if !valid(link.URL) {
			s.logger.Warn("skip invalid link", "url", link.URL)
			continue
		}
		id := domain.ArticleID(link.URL)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, link)
	}

	s.logger.Debug("link source done", "total_links", len(links))
	return links, nil
}

func readFile(path string) ([]domain.ArticleLink, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(raw)
	default:
		return parseLines(raw)
	}
}

func parseYAML(raw []byte) ([]domain.ArticleLink, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("parse links file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var links []domain.ArticleLink
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var wrapped struct {
			Links []domain.ArticleLink `yaml:"links"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("parse links file: %w", err)
		}
		return wrapped.Links, nil
	}
	if err := root.Decode(&links); err != nil {
		return nil, fmt.Errorf("parse links file: %w", err)
	}
	return links, nil
}

func parseLines(raw []byte) ([]domain.ArticleLink, error) {
	var links []domain.ArticleLink
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, domain.ArticleLink{URL: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}
	return links, nil
}

func valid(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
