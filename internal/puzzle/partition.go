package puzzle

import "math/rand"

// Partition splits words into those with all-distinct letters and those with
// at least one repeated letter, preserving relative order in both buckets.
// The watch face wants the distinct-letter words first, so it can pick an
// opening word with no repeats; that ordering is an external contract.
func Partition(words []string) (unique, repeated []string) {
	for _, word := range words {
		if hasDistinctLetters(word) {
			unique = append(unique, word)
		} else {
			repeated = append(repeated, word)
		}
	}
	return unique, repeated
}

func hasDistinctLetters(word string) bool {
	var seen uint64
	for i := 0; i < len(word); i++ {
		bit := uint64(1) << (word[i] % 64)
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// Shuffle permutes words in place using the supplied source. The generate
// pipeline shuffles before partitioning so the watch, whose random source is
// weak, is less likely to always open with the same word. Kept as its own
// stage so the deterministic steps stay testable on their own.
func Shuffle(rng *rand.Rand, words []string) {
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
