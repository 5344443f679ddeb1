package puzzle

// Matcher answers "which words can be spelled from these letters" against a
// fixed word list. Word masks are computed once up front so the exploratory
// mode can score millions of candidate sets without rescanning characters.
type Matcher struct {
	words []string
	masks []uint32
}

// NewMatcher precomputes a letter mask per word. Duplicate words are dropped
// here, keeping the first occurrence, so Filter and Count never have to
// re-deduplicate. Words are expected to be uppercase A-Z; the dictionary
// guarantees this for the embedded asset.
func NewMatcher(words []string) *Matcher {
	m := &Matcher{
		words: make([]string, 0, len(words)),
		masks: make([]uint32, 0, len(words)),
	}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		m.words = append(m.words, word)
		m.masks = append(m.masks, wordMask(word))
	}
	return m
}

func wordMask(word string) uint32 {
	var mask uint32
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		mask |= 1 << (c - 'A')
	}
	return mask
}

// Filter returns the subsequence of the word list spellable using only the
// letters in set: first-seen order, duplicates dropped. A word qualifies when
// every character it contains is in the set; repeats within a word are fine.
func (m *Matcher) Filter(set LetterSet) []string {
	var out []string
	for i, mask := range m.masks {
		if mask&^set.mask == 0 {
			out = append(out, m.words[i])
		}
	}
	return out
}

// Count reports how many words the set can spell. Equivalent to
// len(Filter(set)) without materializing the slice; this is the scorer's
// hot path.
func (m *Matcher) Count(set LetterSet) int {
	n := 0
	for _, mask := range m.masks {
		if mask&^set.mask == 0 {
			n++
		}
	}
	return n
}

// Len returns the number of distinct words the matcher was built over.
func (m *Matcher) Len() int {
	return len(m.words)
}
