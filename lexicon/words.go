package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ReadWords reads a word list: one entry per line, blank lines and lines
// starting with '#' skipped. Entries are NFC-normalized, lowercased and have
// inner whitespace collapsed to single spaces.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w := strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(text))), " ")
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read words: %w", err)
	}

	return words, nil
}

// ReadWordsFile reads the word list at path.
func ReadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadWords(f)
}
