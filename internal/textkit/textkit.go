// Package textkit holds the sentence level heuristics shared by the
// extractor, the content adapter and the reel generator. Every function is
// pure and measures length in runes.
package textkit

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const ellipsis = "..."

// exact-word markers; short English words would match too much as prefixes.
var markerWords = map[string]struct{}{
	"tip":             {},
	"tips":            {},
	"note":            {},
	"key":             {},
	"remember":        {},
	"zusammenfassend": {},
}

var markerPrefixes = []string{
	"wichtig", "tipp", "hinweis", "fazit", "merk", "achtung",
	"important", "conclusion", "essential", "entscheidend",
}

var quotedSpan = regexp.MustCompile(`["“„«]([^"“”„«»]+)["”“»]`)

// Len returns the rune count of s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// NormalizeSpace collapses every whitespace run into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitSentences splits text on terminal punctuation followed by whitespace.
// Closing quotes after the terminator stay with the sentence, and a period
// right after a digit ("3. Semester") does not end one.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var (
		out   []string
		start int
	)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && i > 0 && unicode.IsDigit(runes[i-1]) {
			continue
		}
		end := i + 1
		for end < len(runes) && isClosing(runes[end]) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			continue
		}
		if s := NormalizeSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if start < len(runes) {
		if s := NormalizeSpace(string(runes[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', '“', '”', '»', ')', ']':
		return true
	}
	return false
}

// Summarize greedily appends whole sentences while the result stays within
// limit. See SummarizeN.
func Summarize(text string, limit int) string {
	return SummarizeN(text, 0, limit)
}

// SummarizeN appends at most maxSentences sentences (0 means no cap) while
// the joined result stays within limit; accumulation stops at the first
// sentence that would overflow. When not even the first sentence fits, the
// text is cut at a word boundary instead, so the result never exceeds limit.
func SummarizeN(text string, maxSentences, limit int) string {
	if limit <= 0 {
		return ""
	}

	var (
		summary string
		count   int
	)
	for _, sentence := range SplitSentences(text) {
		if maxSentences > 0 && count == maxSentences {
			break
		}
		candidate := sentence
		if summary != "" {
			candidate = summary + " " + sentence
		}
		if Len(candidate) > limit {
			break
		}
		summary = candidate
		count++
	}

	if summary == "" {
		return Truncate(NormalizeSpace(text), limit)
	}
	return summary
}

// Truncate shortens s to at most max runes, ending with an ellipsis and
// preferring a word boundary in the second half of the kept text.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}

	cut := runes[:max-len(ellipsis)]
	if i := lastSpace(cut); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(string(cut), " ,;:-") + ellipsis
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

// HasMarker reports whether a sentence carries an importance marker such as
// "wichtig", "tip" or "conclusion".
func HasMarker(sentence string) bool {
	for _, word := range strings.FieldsFunc(strings.ToLower(sentence), notLetter) {
		if _, ok := markerWords[word]; ok {
			return true
		}
		for _, prefix := range markerPrefixes {
			if strings.HasPrefix(word, prefix) {
				return true
			}
		}
	}
	return false
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

// MarkerSentences returns the sentences of text that carry a marker, in order.
func MarkerSentences(text string) []string {
	var out []string
	for _, s := range SplitSentences(text) {
		if HasMarker(s) {
			out = append(out, s)
		}
	}
	return out
}

// KeyPoints returns up to n sentences: marker-bearing sentences first in
// document order, then the longest remaining sentences.
func KeyPoints(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	sentences := SplitSentences(text)
	picked := make([]bool, len(sentences))
	points := make([]string, 0, n)

	for i, s := range sentences {
		if len(points) == n {
			return points
		}
		if HasMarker(s) {
			points = append(points, s)
			picked[i] = true
		}
	}

	for _, s := range LongestFirst(sentences, picked) {
		if len(points) == n {
			break
		}
		points = append(points, s)
	}
	return points
}

// LongestFirst orders the sentences not flagged in skip by descending length.
// Equal lengths keep document order. skip may be nil.
func LongestFirst(sentences []string, skip []bool) []string {
	rest := make([]string, 0, len(sentences))
	for i, s := range sentences {
		if skip != nil && skip[i] {
			continue
		}
		rest = append(rest, s)
	}
	slices.SortStableFunc(rest, func(a, b string) int {
		return Len(b) - Len(a)
	})
	return rest
}

// QuotedSpans returns literal quoted passages whose length is strictly
// between minLen and maxLen runes.
func QuotedSpans(text string, minLen, maxLen int) []string {
	var out []string
	for _, m := range quotedSpan.FindAllStringSubmatch(text, -1) {
		span := NormalizeSpace(m[1])
		if n := Len(span); n > minLen && n < maxLen {
			out = append(out, span)
		}
	}
	return out
}

// Words splits text into whitespace separated tokens.
func Words(text string) []string {
	return strings.Fields(text)
}
