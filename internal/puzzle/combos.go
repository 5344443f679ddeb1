package puzzle

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Combos lazily enumerates every size-k subset of an alphabet as a LetterSet,
// in lexicographic order relative to the alphabet. Combinations are produced
// one at a time; nothing is materialized up front, which matters for runs
// like 10-of-24 (~1.96M subsets).
type Combos struct {
	alphabet []byte
	k        int
	gen      *combin.CombinationGenerator
	idx      []int
	current  LetterSet
}

// Combinations builds an enumerator over all size-k subsets of alphabet.
// k greater than the alphabet length yields an immediately exhausted
// enumerator; k < 1 is a caller error.
func Combinations(alphabet []byte, k int) (*Combos, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: combination size %d", ErrInvalidLetterSet, k)
	}
	c := &Combos{alphabet: alphabet, k: k}
	if k <= len(alphabet) {
		c.gen = combin.NewCombinationGenerator(len(alphabet), k)
		c.idx = make([]int, k)
	}
	return c, nil
}

// Total returns the number of subsets the enumerator will produce.
func (c *Combos) Total() int {
	if c.gen == nil {
		return 0
	}
	return combin.Binomial(len(c.alphabet), c.k)
}

// Next advances to the next combination, returning false when exhausted.
func (c *Combos) Next() bool {
	if c.gen == nil || !c.gen.Next() {
		return false
	}
	c.gen.Combination(c.idx)
	letters := make([]byte, c.k)
	for i, j := range c.idx {
		letters[i] = c.alphabet[j]
	}
	c.current = letterSetOf(letters)
	return true
}

// Current returns the combination produced by the last successful Next.
func (c *Combos) Current() LetterSet {
	return c.current
}
