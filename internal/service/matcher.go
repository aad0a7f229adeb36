package service

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SearchMatcher matches free-text queries against titles with fuzzy matching support.
type SearchMatcher struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewSearchMatcher creates a new SearchMatcher.
func NewSearchMatcher() *SearchMatcher {
	return &SearchMatcher{
		threshold: 0.75,
	}
}

// Match reports whether query matches any of the candidate strings.
// An empty query matches everything.
func (m *SearchMatcher) Match(query string, candidates ...string) bool {
	q := m.normalize(query)
	if q == "" {
		return true
	}

	for _, c := range candidates {
		c = m.normalize(c)
		if c == "" {
			continue
		}
		if strings.Contains(c, q) {
			return true
		}
		if m.similarity(q, c) >= m.threshold {
			return true
		}
		// Compare against each word so "bakara" still finds "al baqara".
		for _, word := range strings.Fields(c) {
			if m.similarity(q, word) >= m.threshold {
				return true
			}
		}
	}
	return false
}

// normalize normalizes a string for comparison.
func (m *SearchMatcher) normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = normalizeArabic(s)

	// Transliterations mix "-" and "'" freely: Al-Faatiha, An-Nas, Ta'ha.
	s = strings.NewReplacer("-", " ", "'", "", "`", "").Replace(s)

	return strings.Join(strings.Fields(s), " ")
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (m *SearchMatcher) similarity(s1, s2 string) float64 {
	maxLen := max(utf8.RuneCountInString(s1), utf8.RuneCountInString(s2))
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(s1, s2)
	return 1.0 - float64(distance)/float64(maxLen)
}

// normalizeArabic normalizes Arabic text by removing diacritics and normalizing characters.
func normalizeArabic(s string) string {
	replacements := map[rune]rune{
		'أ': 'ا', // Alef with hamza above
		'إ': 'ا', // Alef with hamza below
		'آ': 'ا', // Alef with madda
		'ٱ': 'ا', // Alef wasla
		'ة': 'ه', // Teh marbuta to heh
		'ى': 'ي', // Alef maksura to yeh
	}

	return strings.Map(func(r rune) rune {
		// Arabic diacritics range: U+064B to U+065F, superscript alef U+0670
		if (r >= 0x064B && r <= 0x065F) || r == 0x0670 {
			return -1
		}
		// Tatweel (kashida): U+0640
		if r == 0x0640 {
			return -1
		}
		if normalized, ok := replacements[r]; ok {
			return normalized
		}
		return r
	}, s)
}
