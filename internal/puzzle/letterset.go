// Package puzzle implements the letter-set filtering that decides which
// dictionary words the watch face can offer: letter sets, the word matcher,
// the uniqueness partition, and combination enumeration.
package puzzle

import (
	"fmt"
	"strings"
)

// ErrInvalidLetterSet signals a caller programming error: letters outside
// A-Z, an empty set, or a combination size the alphabet cannot satisfy.
var ErrInvalidLetterSet = fmt.Errorf("puzzle: invalid letter set")

// LetterSet is a normalized set of uppercase letters: deduplicated, sorted,
// with a 26-bit mask for O(1) membership tests.
type LetterSet struct {
	letters string
	mask    uint32
}

// NewLetterSet normalizes s (case-insensitive, duplicates collapsed) into a
// LetterSet. Non-alphabetic characters are rejected.
func NewLetterSet(s string) (LetterSet, error) {
	var mask uint32
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return LetterSet{}, fmt.Errorf("%w: character %q", ErrInvalidLetterSet, r)
		}
		mask |= 1 << (r - 'A')
	}
	if mask == 0 {
		return LetterSet{}, fmt.Errorf("%w: empty", ErrInvalidLetterSet)
	}
	return fromMask(mask), nil
}

// letterSetOf builds a LetterSet from already-normalized uppercase letters.
// The enumerator uses it to avoid re-validating every combination.
func letterSetOf(letters []byte) LetterSet {
	var mask uint32
	for _, b := range letters {
		mask |= 1 << (b - 'A')
	}
	return fromMask(mask)
}

func fromMask(mask uint32) LetterSet {
	var b []byte
	for i := 0; i < 26; i++ {
		if mask&(1<<i) != 0 {
			b = append(b, byte('A'+i))
		}
	}
	return LetterSet{letters: string(b), mask: mask}
}

// Contains reports whether the uppercase letter c is in the set.
func (s LetterSet) Contains(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return s.mask&(1<<(c-'A')) != 0
}

// Letters returns the sorted letters of the set.
func (s LetterSet) Letters() []byte {
	return []byte(s.letters)
}

func (s LetterSet) Mask() uint32 {
	return s.mask
}

func (s LetterSet) Size() int {
	return len(s.letters)
}

// String renders the set in its canonical sorted order, e.g. "ACEILNOPRS".
func (s LetterSet) String() string {
	return s.letters
}

// Alphabet returns A-Z with the letters of exclude removed, in order. This is
// the input the combination enumerator works over; exclusion is resolved here,
// by the caller, not inside the enumerator.
func Alphabet(exclude string) []byte {
	excluded := strings.ToUpper(exclude)
	var out []byte
	for c := byte('A'); c <= 'Z'; c++ {
		if strings.IndexByte(excluded, c) < 0 {
			out = append(out, c)
		}
	}
	return out
}
