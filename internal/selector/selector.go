package selector

import (
	"fmt"
	"regexp"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Field names one extractable part of an article page.
type Field string

const (
	FieldTitle     Field = "title"
	FieldSubtitle  Field = "subtitle"
	FieldAuthor    Field = "author"
	FieldPublished Field = "published"
	FieldCategory  Field = "category"
	FieldBody      Field = "body"
	FieldImages    Field = "images"
	FieldTags      Field = "tags"
)

// Fields lists every field in extraction order.
var Fields = []Field{
	FieldTitle, FieldSubtitle, FieldAuthor, FieldPublished,
	FieldCategory, FieldBody, FieldImages, FieldTags,
}

// ParseField validates a field name coming from configuration.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown selector field %q", name)
}

// Match is what a rule found: the matching nodes and one value per node.
type Match struct {
	Nodes  *goquery.Selection
	Values []string
}

// First returns the first value of the match.
func (m Match) First() string {
	if len(m.Values) == 0 {
		return ""
	}
	return m.Values[0]
}

// Rule is one (predicate, extractor) pair. Apply reports false when the
// rule's predicate does not hold for the document.
type Rule interface {
	Apply(doc *goquery.Document) (Match, bool)
	String() string
}

// CSSRule matches a CSS selector and reads either the node text or an attribute.
type CSSRule struct {
	Selector string
	Attr     string
}

// Apply keeps only nodes with a non-empty value.
func (r CSSRule) Apply(doc *goquery.Document) (Match, bool) {
	var values []string
	nodes := doc.Find(r.Selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v := r.value(s)
		if v == "" {
			return false
		}
		values = append(values, v)
		return true
	})
	if len(values) == 0 {
		return Match{}, false
	}
	return Match{Nodes: nodes, Values: values}, true
}

func (r CSSRule) value(s *goquery.Selection) string {
	if r.Attr != "" {
		return strings.TrimSpace(s.AttrOr(r.Attr, ""))
	}
	return strings.Join(strings.Fields(s.Text()), " ")
}

func (r CSSRule) String() string {
	if r.Attr == "" {
		return r.Selector
	}
	return r.Selector + "@" + r.Attr
}

// ReadabilityRule isolates the main content with go-readability. It is meant
// as the last body rule for pages none of the CSS rules understand.
type ReadabilityRule struct{}

// Apply returns the cleaned content as nodes and its plain text as value.
func (ReadabilityRule) Apply(doc *goquery.Document) (Match, bool) {
	raw, err := doc.Html()
	if err != nil {
		return Match{}, false
	}

	article, err := readability.FromReader(strings.NewReader(raw), doc.Url)
	if err != nil {
		return Match{}, false
	}

	var text strings.Builder
	if err := article.RenderText(&text); err != nil {
		return Match{}, false
	}
	plain := strings.TrimSpace(text.String())
	if plain == "" {
		return Match{}, false
	}

	var html strings.Builder
	if err := article.RenderHTML(&html); err != nil {
		return Match{}, false
	}
	content, err := goquery.NewDocumentFromReader(strings.NewReader(html.String()))
	if err != nil {
		return Match{}, false
	}

	return Match{Nodes: content.Find("body"), Values: []string{plain}}, true
}

func (ReadabilityRule) String() string {
	return readabilityKeyword
}

const readabilityKeyword = "readability"

var attrName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// ParseRule builds a rule from its configuration form: a CSS selector with an
// optional "@attr" suffix, or the keyword "readability".
func ParseRule(spec string) (Rule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty selector rule")
	}
	if spec == readabilityKeyword {
		return ReadabilityRule{}, nil
	}

	rule := CSSRule{Selector: spec}
	if i := strings.LastIndex(spec, "@"); i > 0 && attrName.MatchString(spec[i+1:]) {
		rule = CSSRule{Selector: strings.TrimSpace(spec[:i]), Attr: spec[i+1:]}
	}

	if _, err := cascadia.Compile(rule.Selector); err != nil {
		return nil, fmt.Errorf("selector %q: %w", rule.Selector, err)
	}
	return rule, nil
}

// MustParseRules is ParseRule over a list, panicking on invalid input.
// Only meant for the built-in tables.
func MustParseRules(specs ...string) []Rule {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := ParseRule(spec)
		if err != nil {
			panic(err)
		}
		rules = append(rules, rule)
	}
	return rules
}
