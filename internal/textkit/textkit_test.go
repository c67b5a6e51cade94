package textkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want []string
	}{
		"simple": {
			in:   "Erster Satz. Zweiter Satz! Dritter?",
			want: []string{"Erster Satz.", "Zweiter Satz!", "Dritter?"},
		},
		"semester marker is not a boundary": {
			in:   "Im 3. Semester wird es ernst. Dann kommt die Klausur.",
			want: []string{"Im 3. Semester wird es ernst.", "Dann kommt die Klausur."},
		},
		"closing quote stays attached": {
			in:   `Sie sagte "Lern jeden Tag." Danach ging sie.`,
			want: []string{`Sie sagte "Lern jeden Tag."`, "Danach ging sie."},
		},
		"trailing text without terminator": {
			in:   "One. Two without end",
			want: []string{"One.", "Two without end"},
		},
		"whitespace collapsed": {
			in:   "  A   first\nsentence.   ",
			want: []string{"A first sentence."},
		},
		"empty": {
			in:   "   ",
			want: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitSentences(tc.in))
		})
	}
}

func TestSummarizeStopsAtFirstOverflow(t *testing.T) {
	t.Parallel()

	text := "Short one. This second sentence is considerably longer than the first. Tiny."
	got := Summarize(text, 30)

	assert.Equal(t, "Short one.", got, "must not skip ahead to a later sentence that fits")
}

func TestSummarizeNCapsSentences(t *testing.T) {
	t.Parallel()

	text := "A one. B two. C three. D four."
	assert.Equal(t, "A one. B two. C three.", SummarizeN(text, 3, 300))
	assert.Equal(t, "A one. B two.", SummarizeN(text, 3, 14))
}

func TestSummarizeNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("Lernen ist wichtig und macht manchmal sogar Spaß ", 20) + "."
	for _, limit := range []int{1, 3, 10, 50, 100, 299} {
		got := Summarize(text, limit)
		assert.LessOrEqual(t, Len(got), limit, "limit %d", limit)
		assert.NotEmpty(t, got, "limit %d", limit)
	}
	assert.Empty(t, Summarize(text, 0))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kurz", Truncate("kurz", 50))

	long := "Die zehn besten Lernstrategien für die Prüfungsphase im Wintersemester"
	got := Truncate(long, 50)
	assert.LessOrEqual(t, Len(got), 50)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(got, "...")))

	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestHasMarker(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"Wichtig ist ein fester Lernplan.":      true,
		"Mein Tipp: früh anfangen.":             true,
		"One important thing to know.":          true,
		"Note that deadlines move.":             true,
		"Im Fazit zeigt sich der Trend.":        true,
		"Die Noten waren gut.":                  false,
		"Multiple notebooks were on the table.": false,
		"The keyboard was loud.":                false,
	}

	for sentence, want := range tests {
		assert.Equal(t, want, HasMarker(sentence), sentence)
	}
}

func TestKeyPointsMarkersFirstThenLongest(t *testing.T) {
	t.Parallel()

	text := "Short filler. " +
		"Wichtig ist ein realistischer Lernplan. " +
		"This is the longest sentence without any special words in it at all. " +
		"Mid length sentence here. " +
		"Mein Tipp: Pausen einplanen."

	got := KeyPoints(text, 4)
	require.Len(t, got, 4)
	assert.Equal(t, "Wichtig ist ein realistischer Lernplan.", got[0])
	assert.Equal(t, "Mein Tipp: Pausen einplanen.", got[1])
	assert.Equal(t, "This is the longest sentence without any special words in it at all.", got[2])
	assert.Equal(t, "Mid length sentence here.", got[3])
}

func TestKeyPointsExhaustsSentences(t *testing.T) {
	t.Parallel()

	got := KeyPoints("One. Two.", 5)
	assert.Len(t, got, 2)
	assert.Nil(t, KeyPoints("One.", 0))
}

func TestQuotedSpans(t *testing.T) {
	t.Parallel()

	text := `Er sagte: „Wer früh anfängt, hat am Ende weniger Stress.“ ` +
		`Dann: "zu kurz". ` +
		`And: “Consistency beats intensity when you prepare for exams.”`

	got := QuotedSpans(text, 20, 200)
	assert.Equal(t, []string{
		"Wer früh anfängt, hat am Ende weniger Stress.",
		"Consistency beats intensity when you prepare for exams.",
	}, got)
}

func TestQuotedSpansBoundsAreExclusive(t *testing.T) {
	t.Parallel()

	exactly20 := strings.Repeat("a", 20)
	exactly21 := strings.Repeat("b", 21)
	text := `"` + exactly20 + `" and "` + exactly21 + `"`

	assert.Equal(t, []string{exactly21}, QuotedSpans(text, 20, 200))
}
