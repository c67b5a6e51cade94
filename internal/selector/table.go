package selector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Table maps every field to its ordered rule list. The first rule that
// matches wins, so the order is part of the contract with a content source.
type Table map[Field][]Rule

// Apply runs the rules of field in order and returns the first match.
func (t Table) Apply(doc *goquery.Document, field Field) (Match, bool) {
	for _, rule := range t[field] {
		if m, ok := rule.Apply(doc); ok {
			return m, true
		}
	}
	return Match{}, false
}

// First returns the first value of the winning rule, or "".
func (t Table) First(doc *goquery.Document, field Field) string {
	m, _ := t.Apply(doc, field)
	return m.First()
}

// All returns every value of the winning rule.
func (t Table) All(doc *goquery.Document, field Field) []string {
	m, _ := t.Apply(doc, field)
	return m.Values
}

// withFallback fills fields missing from t with the rules of fallback.
func (t Table) withFallback(fallback Table) Table {
	merged := make(Table, len(Fields))
	for _, f := range Fields {
		if rules := t[f]; len(rules) > 0 {
			merged[f] = rules
			continue
		}
		merged[f] = fallback[f]
	}
	return merged
}

// ParseTable builds a table from its configuration form (field -> rule specs).
func ParseTable(spec map[string][]string) (Table, error) {
	table := make(Table, len(spec))
	for name, rules := range spec {
		field, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		for _, raw := range rules {
			rule, err := ParseRule(raw)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field, err)
			}
			table[field] = append(table[field], rule)
		}
	}
	return table, nil
}

// Registry keeps per-host selector tables on top of a default table.
type Registry struct {
	mu       sync.RWMutex
	fallback Table
	hosts    map[string]Table
}

// NewRegistry builds a registry answering fallback for unknown hosts.
func NewRegistry(fallback Table) *Registry {
	if fallback == nil {
		fallback = DefaultTable()
	}
	return &Registry{fallback: fallback, hosts: map[string]Table{}}
}

// NewRegistryFromConfig parses host overrides (host -> field -> rules).
func NewRegistryFromConfig(hosts map[string]map[string][]string) (*Registry, error) {
	reg := NewRegistry(DefaultTable())
	for host, spec := range hosts {
		table, err := ParseTable(spec)
		if err != nil {
			return nil, fmt.Errorf("selectors for %s: %w", host, err)
		}
		reg.Register(host, table)
	}
	return reg, nil
}

// Register adds or replaces the table of a host. Fields the table leaves
// empty keep the default rules.
func (r *Registry) Register(host string, table Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts[normalizeHost(host)] = table.withFallback(r.fallback)
}

// Resolve returns the table for host, or the default table.
func (r *Registry) Resolve(host string) Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if table, ok := r.hosts[normalizeHost(host)]; ok {
		return table
	}
	return r.fallback
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
}

// DefaultTable returns the built-in rules, tuned for WordPress style blogs
// with generic fallbacks behind them.
func DefaultTable() Table {
	return Table{
		FieldTitle: MustParseRules(
			"h1.entry-title",
			"h1.article-title",
			"article h1",
			"h1",
			"meta[property='og:title']@content",
			"title",
		),
		FieldSubtitle: MustParseRules(
			".entry-subtitle",
			".article-subtitle",
			".subtitle",
			".lead",
			"meta[property='og:description']@content",
			"meta[name='description']@content",
		),
		FieldAuthor: MustParseRules(
			".author-name",
			".entry-author",
			"[rel='author']",
			".byline",
			"meta[name='author']@content",
		),
		FieldPublished: MustParseRules(
			"time[datetime]@datetime",
			"meta[property='article:published_time']@content",
			".entry-date",
			".published",
		),
		FieldCategory: MustParseRules(
			".entry-category a",
			".category",
			"[rel='category tag']",
			"meta[property='article:section']@content",
		),
		FieldBody: MustParseRules(
			".entry-content",
			".article-content",
			".post-content",
			"article",
			"main",
			readabilityKeyword,
		),
		FieldImages: MustParseRules(
			".entry-content img@src",
			".article-content img@src",
			"article img@src",
			"main img@src",
			"meta[property='og:image']@content",
		),
		FieldTags: MustParseRules(
			".entry-tags a",
			".tags a",
			"[rel='tag']",
			"meta[property='article:tag']@content",
		),
	}
}
