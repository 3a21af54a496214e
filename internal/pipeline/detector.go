package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// minNameLength guards against short names matching inside ordinary words.
const minNameLength = 3

type assetPattern struct {
	symbol string
	symRe  *regexp.Regexp
	nameRe *regexp.Regexp
}

// MentionDetector counts how often known assets appear in a piece of text.
// Symbols match case-sensitively and names case-insensitively, both on word
// boundaries. A symbol inside a matched name is not counted again.
type MentionDetector struct {
	patterns []assetPattern
}

// NewMentionDetector builds a detector for the given assets.
func NewMentionDetector(assets []Asset) *MentionDetector {
	d := &MentionDetector{}
	for _, a := range assets {
		symbol := strings.TrimSpace(a.Symbol)
		if symbol == "" {
			continue
		}
		p := assetPattern{
			symbol: symbol,
			symRe:  regexp.MustCompile(bounded(symbol)),
		}
		if name := strings.TrimSpace(a.Name); len([]rune(name)) >= minNameLength {
			p.nameRe = regexp.MustCompile(`(?i)` + bounded(name))
		}
		d.patterns = append(d.patterns, p)
	}
	return d
}

// bounded wraps term in word boundaries. Terms starting or ending in a
// non-ASCII letter (CJK names) get no boundary on that side, since RE2's \b
// only knows ASCII word characters.
func bounded(term string) string {
	runes := []rune(term)
	expr := regexp.QuoteMeta(term)
	if isASCIIWord(runes[0]) {
		expr = `\b` + expr
	}
	if isASCIIWord(runes[len(runes)-1]) {
		expr += `\b`
	}
	return expr
}

func isASCIIWord(r rune) bool {
	return r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Detect returns symbol -> occurrence count for every asset found in title and content.
func (d *MentionDetector) Detect(title, content string) map[string]int {
	text := title + "\n" + content

	counts := make(map[string]int)
	for _, p := range d.patterns {
		var names [][]int
		if p.nameRe != nil {
			names = p.nameRe.FindAllStringIndex(text, -1)
		}
		n := len(names)
		for _, loc := range p.symRe.FindAllStringIndex(text, -1) {
			if !within(loc, names) {
				n++
			}
		}
		if n > 0 {
			counts[p.symbol] = n
		}
	}
	return counts
}

// within reports whether loc lies inside one of spans.
func within(loc []int, spans [][]int) bool {
	for _, s := range spans {
		if loc[0] >= s[0] && loc[1] <= s[1] {
			return true
		}
	}
	return false
}

// Symbols returns the detected symbols of counts in ascending order.
func Symbols(counts map[string]int) []string {
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
