// Package dictionary holds the fixed word list the watch face draws from.
// The asset is embedded at build time; every word is uppercase and the same
// length (five letters in the shipped data).
package dictionary

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed words.txt
var wordData string

// ErrEmpty is returned when the embedded asset yields no usable words.
var ErrEmpty = fmt.Errorf("dictionary: no words loaded")

// Dictionary is an immutable, ordered word list. Order matters only as a
// determinism source for downstream tie-breaks.
type Dictionary struct {
	words      []string
	wordLength int
}

// LetterCount pairs a letter with the number of words that contain it.
type LetterCount struct {
	Letter byte
	Count  int
}

// Load parses and validates the embedded word list.
func Load() (*Dictionary, error) {
	return parse(wordData)
}

func parse(data string) (*Dictionary, error) {
	var words []string
	length := 0
	for i, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if length == 0 {
			length = len(word)
		}
		if len(word) != length {
			return nil, fmt.Errorf("dictionary: word %q on line %d has length %d, want %d", word, i+1, len(word), length)
		}
		for j := 0; j < len(word); j++ {
			if word[j] < 'A' || word[j] > 'Z' {
				return nil, fmt.Errorf("dictionary: word %q on line %d contains %q, want A-Z", word, i+1, word[j])
			}
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Dictionary{words: words, wordLength: length}, nil
}

// Words returns the word list in asset order. Callers must not mutate it.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLength is the uniform length of every word in the list.
func (d *Dictionary) WordLength() int {
	return d.wordLength
}

// LetterUsage reports, for each letter A-Z, how many words contain it at
// least once, sorted by count descending with alphabetical tie-break.
func (d *Dictionary) LetterUsage() []LetterCount {
	counts := make([]LetterCount, 26)
	for i := range counts {
		counts[i].Letter = byte('A' + i)
	}
	for _, word := range d.words {
		var seen [26]bool
		for j := 0; j < len(word); j++ {
			seen[word[j]-'A'] = true
		}
		for j, hit := range seen {
			if hit {
				counts[j].Count++
			}
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
