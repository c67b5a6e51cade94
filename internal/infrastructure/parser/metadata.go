package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/textkit"
)

const (
	wordsPerMinute      = 200
	longWordRunes       = 8
	advancedRatio       = 0.20
	intermediateRatio   = 0.10
	adaptableMinText    = 100
	storyMaxText        = 500
	maxHashtags         = 15
	maxKeyQuotes        = 5
	fallbackQuotes      = 3
	quoteMinLen         = 20
	quoteMaxLen         = 200
	summarySentences    = 3
	summaryMaxLen       = 300
	highQualityWords    = 800
	mediumQualityWords  = 400
	generalBucket       = "general"
	defaultAuthorName   = "Redaktion"
	semesterPatternText = `(\d+)\.\s*Semester`
)

var semesterPattern = regexp.MustCompile(semesterPatternText)

var baseHashtags = []string{"Studium", "StudentLife", "Studibuch"}

// keywordHashtags are matched as word prefixes against the lowercased text.
var keywordHashtags = []struct {
	keyword string
	tag     string
}{
	{"prüfung", "Prüfungsphase"},
	{"klausur", "Klausurphase"},
	{"exam", "ExamPrep"},
	{"lern", "Lernen"},
	{"study", "StudyTips"},
	{"tipp", "StudyTips"},
	{"motivation", "Motivation"},
	{"karriere", "Karriere"},
	{"career", "Career"},
	{"praktikum", "Praktikum"},
	{"bewerbung", "Bewerbung"},
	{"bafög", "BAföG"},
	{"finanz", "Finanzen"},
	{"wohnung", "Studentenwohnung"},
	{"erstsemester", "Ersti"},
}

// studyAreas is scanned in order; the area with most keyword hits wins.
var studyAreas = []struct {
	area     string
	keywords []string
}{
	{"Medizin", []string{"medizin", "medicine", "klinik", "anatomie", "physikum"}},
	{"Jura", []string{"jura", "jurist", "rechtswissenschaft", "staatsexamen", "law school"}},
	{"BWL", []string{"bwl", "betriebswirtschaft", "business", "marketing", "controlling"}},
	{"Informatik", []string{"informatik", "programmier", "software", "computer science", "algorithm"}},
	{"Ingenieurwesen", []string{"ingenieur", "maschinenbau", "elektrotechnik", "engineering"}},
	{"Psychologie", []string{"psycholog"}},
	{"Lehramt", []string{"lehramt", "pädagog", "referendariat"}},
	{"Naturwissenschaften", []string{"biologie", "chemie", "physik", "mathematik"}},
}

// derived is everything computed from text and images alone.
type derived struct {
	summary   string
	wordCount int
	metadata  domain.ArticleMetadata
	social    domain.SocialMetadata
	quality   domain.QualityTier
}

func deriveMetadata(title, text, category string, tags []string, images domain.ArticleImages) derived {
	words := textkit.Words(text)
	textLen := textkit.Len(text)
	area := studyArea(title + " " + text)

	return derived{
		summary:   textkit.SummarizeN(text, summarySentences, summaryMaxLen),
		wordCount: len(words),
		metadata: domain.ArticleMetadata{
			ReadTime:   readTime(len(words)),
			Difficulty: classifyDifficulty(words),
			StudyArea:  area,
			Semester:   semester(text),
		},
		social: domain.SocialMetadata{
			Adaptable:        textLen > adaptableMinText && images.HasImage(),
			SuggestedFormats: suggestedFormats(textLen, len(images.Gallery), images.HasImage()),
			Hashtags:         hashtags(title+" "+text, area, category, tags),
			KeyQuotes:        keyQuotes(text),
		},
		quality: qualityTier(len(words), images.HasImage()),
	}
}

func readTime(words int) int {
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// classifyDifficulty grades by the share of words with 8 or more letters.
func classifyDifficulty(words []string) domain.Difficulty {
	if len(words) == 0 {
		return domain.DifficultyBeginner
	}
	long := 0
	for _, w := range words {
		letters := 0
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if letters >= longWordRunes {
			long++
		}
	}

	ratio := float64(long) / float64(len(words))
	switch {
	case ratio > advancedRatio:
		return domain.DifficultyAdvanced
	case ratio > intermediateRatio:
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyBeginner
	}
}

func studyArea(text string) string {
	lower := strings.ToLower(text)
	best, bestHits := generalBucket, 0
	for _, candidate := range studyAreas {
		hits := 0
		for _, kw := range candidate.keywords {
			hits += strings.Count(lower, kw)
		}
		if hits > bestHits {
			best, bestHits = candidate.area, hits
		}
	}
	return best
}

func semester(text string) int {
	m := semesterPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func suggestedFormats(textLen, galleryLen int, hasImage bool) []domain.Format {
	formats := []domain.Format{domain.FormatPost}
	if galleryLen > 1 {
		formats = append(formats, domain.FormatCarousel)
	}
	if textLen < storyMaxText {
		formats = append(formats, domain.FormatStory)
	}
	if hasImage {
		formats = append(formats, domain.FormatReel)
	}
	return formats
}

// hashtags lists base tags, keyword tags, then area, category and article
// tags, without duplicates and capped at 15. Tags carry no leading '#'.
func hashtags(text, area, category string, tags []string) []string {
	var (
		out  []string
		seen = map[string]struct{}{}
	)
	add := func(tag string) {
		if tag == "" || len(out) == maxHashtags {
			return
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}

	for _, tag := range baseHashtags {
		add(tag)
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, kt := range keywordHashtags {
		for _, w := range words {
			if strings.HasPrefix(w, kt.keyword) {
				add(kt.tag)
				break
			}
		}
	}

	if area != generalBucket {
		add(camelTag(area))
	}
	if category != generalBucket {
		add(camelTag(category))
	}
	for _, tag := range tags {
		add(camelTag(tag))
	}
	return out
}

// camelTag turns "zeit management" into "ZeitManagement".
func camelTag(value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	caser := cases.Title(language.German)
	var b strings.Builder
	for _, p := range parts {
		if strings.ToUpper(p) == p {
			b.WriteString(p)
			continue
		}
		b.WriteString(caser.String(p))
	}
	return b.String()
}

// keyQuotes prefers literal quotes, then marker sentences, and falls back to
// the three longest sentences. Only the first two sources are length-bounded.
func keyQuotes(text string) []string {
	quotes := textkit.QuotedSpans(text, quoteMinLen, quoteMaxLen)

	if len(quotes) == 0 {
		for _, s := range textkit.MarkerSentences(text) {
			if n := textkit.Len(s); n > quoteMinLen && n < quoteMaxLen {
				quotes = append(quotes, s)
			}
		}
	}

	if len(quotes) == 0 {
		longest := textkit.LongestFirst(textkit.SplitSentences(text), nil)
		quotes = longest[:min(fallbackQuotes, len(longest))]
	}

	return uniqueCapped(quotes, maxKeyQuotes)
}

func uniqueCapped(values []string, limit int) []string {
	out := make([]string, 0, min(limit, len(values)))
	seen := map[string]struct{}{}
	for _, v := range values {
		if len(out) == limit {
			break
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func qualityTier(words int, hasImage bool) domain.QualityTier {
	switch {
	case words > highQualityWords && hasImage:
		return domain.QualityHigh
	case words > mediumQualityWords || hasImage:
		return domain.QualityMedium
	default:
		return domain.QualityLow
	}
}
