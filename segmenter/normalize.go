package segmenter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Vietnamese tone marks as combining characters.
var toneMarks = []rune{
	'\u0300', // huyền
	'\u0301', // sắc
	'\u0309', // hỏi
	'\u0303', // ngã
	'\u0323', // nặng
}

// Vowel pairs whose tone mark moves from the first to the second vowel when
// the pair ends a syllable: "òa" → "oà", "òe" → "oè", "ùy" → "uỳ".
var tonePairs = [][2]rune{{'o', 'a'}, {'o', 'e'}, {'u', 'y'}, {'O', 'A'}, {'O', 'E'}, {'U', 'Y'}}

// AccentNormalizer composes a phrase to NFC and rewrites old-style tone
// placement to the new style, syllable by syllable.
type AccentNormalizer struct {
	table map[string]string // old syllable ending → new ending
}

// NewAccentNormalizer returns the default Normalizer.
func NewAccentNormalizer() *AccentNormalizer {
	table := make(map[string]string, len(tonePairs)*len(toneMarks))
	for _, p := range tonePairs {
		for _, m := range toneMarks {
			old := norm.NFC.String(string([]rune{p[0], m, p[1]}))
			repl := norm.NFC.String(string([]rune{p[0], p[1], m}))
			table[old] = repl
		}
	}

	return &AccentNormalizer{table: table}
}

// Normalize implements Normalizer.
func (n *AccentNormalizer) Normalize(phrase string) string {
	syllables := strings.Split(norm.NFC.String(phrase), " ")
	for i, syl := range syllables {
		syllables[i] = n.syllable(syl)
	}

	return strings.Join(syllables, " ")
}

func (n *AccentNormalizer) syllable(s string) string {
	// Every key is two runes; look only at the last two.
	_, last := utf8.DecodeLastRuneInString(s)
	if last == 0 || last == len(s) {
		return s
	}
	_, prev := utf8.DecodeLastRuneInString(s[:len(s)-last])
	cut := len(s) - last - prev
	if repl, ok := n.table[s[cut:]]; ok {
		return s[:cut] + repl
	}

	return s
}

var defaultNormalizer = NewAccentNormalizer()

// Normalize prepares a phrase for segmentation with the default
// AccentNormalizer. See (*Segmenter).Normalize.
func Normalize(phrase string) (string, error) {
	return normalize(phrase, defaultNormalizer)
}

func normalize(phrase string, n Normalizer) (string, error) {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return "", ErrEmptyPhrase
	}
	p := strings.Join(fields, " ")
	if r, size := utf8.DecodeRuneInString(p); unicode.IsUpper(r) {
		p = string(unicode.ToLower(r)) + p[size:]
	}

	return n.Normalize(p), nil
}
