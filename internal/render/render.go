// Package render serializes results into the forms their consumers expect:
// C source arrays for the watch face, and the flat scoreboard report for the
// exploratory mode.
package render

import (
	"fmt"
	"strings"

	"github.com/lowellgb/watchwords/internal/dictionary"
	"github.com/lowellgb/watchwords/internal/explore"
	"github.com/lowellgb/watchwords/internal/puzzle"
)

// WordsPerRow is how many word literals go on each line of the generated
// _legal_words array.
const WordsPerRow = 9

// ReplaceGlyphs rewrites every 'D' to lowercase 'd' in a fresh copy of words.
// The watch's segment display has no readable uppercase D glyph, so the
// firmware expects the lowercase form in its word table. Applied uniformly
// after filtering, before emission.
func ReplaceGlyphs(words []string) []string {
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = strings.ReplaceAll(word, "D", "d")
	}
	return out
}

// Source renders the C declarations the watch face compiles in: the allowed
// letters, the word table in rows of nine, and the count of leading
// all-distinct-letter words.
func Source(set puzzle.LetterSet, words []string, uniqueCount int) string {
	var b strings.Builder

	b.WriteString("static const char _valid_letters[] = {")
	letters := set.Letters()
	for i, c := range letters {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%c'", c)
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "// Number of words found: %d\n", len(words))
	b.WriteString("static const char _legal_words[][WORDLE_LENGTH + 1] = {\n")
	for i := 0; i < len(words); i += WordsPerRow {
		b.WriteString("    ")
		end := i + WordsPerRow
		if end > len(words) {
			end = len(words)
		}
		for _, word := range words[i:end] {
			fmt.Fprintf(&b, "%q, ", word)
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "\nstatic const uint16_t _num_unique_words = %d;  // The _legal_words array begins with this many words where each letter is different.\n", uniqueCount)

	return b.String()
}

// Scoreboard renders one line per combination, "[A B C]: score". The caller
// decides the order; the exploratory mode sorts by score descending first.
func Scoreboard(entries explore.Scoreboard) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("[")
		for i, c := range e.Letters.Letters() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteByte(c)
		}
		fmt.Fprintf(&b, "]: %d\n", e.Score)
	}
	return b.String()
}

// LetterUsageTable renders the dictionary's letter-usage tally as the small
// two-column report the original tool printed.
func LetterUsageTable(counts []dictionary.LetterCount) string {
	var b strings.Builder
	b.WriteString("Letter | Usage\n")
	b.WriteString("--------------\n")
	for _, c := range counts {
		fmt.Fprintf(&b, "%c      | %d\n", c.Letter, c.Count)
	}
	return b.String()
}
