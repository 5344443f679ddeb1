// Package explore drives the exhaustive letter-combination search: score
// every size-k subset of the alphabet by how many dictionary words it can
// spell, with periodic progress telemetry for the long-running pass.
package explore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lowellgb/watchwords/internal/puzzle"
)

// Entry is one scored combination. Index is the enumeration position, kept so
// a stable sort reproduces first-enumerated-wins tie-breaking.
type Entry struct {
	Letters puzzle.LetterSet
	Score   int
	Index   int
}

// Scoreboard holds every scored combination, in enumeration order until
// SortByScore is called.
type Scoreboard []Entry

// SortByScore orders entries by score descending. The sort is stable, so
// equal scores keep their enumeration order.
func (s Scoreboard) SortByScore() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Score > s[j].Score
	})
}

// Best returns the highest-scoring entry; on ties, the one enumerated first.
func (s Scoreboard) Best() (Entry, error) {
	if len(s) == 0 {
		return Entry{}, fmt.Errorf("explore: empty scoreboard")
	}
	best := s[0]
	for _, e := range s[1:] {
		if e.Score > best.Score || (e.Score == best.Score && e.Index < best.Index) {
			best = e
		}
	}
	return best, nil
}

// Progress is one telemetry snapshot. Timing is measured around the scoring
// work only; whatever the sink does with a snapshot is not counted.
type Progress struct {
	Done      int
	Total     int
	Window    int // combinations covered by Interval
	Elapsed   time.Duration
	Interval  time.Duration // time spent on the last reporting window
	Estimated time.Duration // extrapolated total for the whole pass
	Remaining time.Duration
	Percent   int
}

// ItemsLeft is the number of combinations still to score.
func (p Progress) ItemsLeft() int {
	return p.Total - p.Done
}

// Scorer runs the combination search over a fixed dictionary matcher.
type Scorer struct {
	Matcher  *puzzle.Matcher
	Alphabet []byte
	Size     int

	// OnProgress, when set, receives a snapshot roughly every
	// total/reports combinations (at least every combination for small
	// totals). Nil disables reporting.
	OnProgress func(Progress)

	// Reports bounds reporting overhead: the pass emits about this many
	// snapshots regardless of total size. Zero means 100.
	Reports int
}

// Run scores every combination and returns the scoreboard in enumeration
// order. Cancelling ctx aborts between combinations; no partial scoreboard
// is returned.
func (sc *Scorer) Run(ctx context.Context) (Scoreboard, error) {
	combos, err := puzzle.Combinations(sc.Alphabet, sc.Size)
	if err != nil {
		return nil, err
	}
	total := combos.Total()
	board := make(Scoreboard, 0, total)

	reports := sc.Reports
	if reports <= 0 {
		reports = 100
	}
	every := total / reports
	if every < 1 {
		every = 1
	}
	expectedReports := 0
	if total > 0 {
		expectedReports = (total + every - 1) / every
	}

	start := time.Now()
	prev := start
	sinceReport := 0
	for combos.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		set := combos.Current()
		board = append(board, Entry{
			Letters: set,
			Score:   sc.Matcher.Count(set),
			Index:   len(board),
		})

		sinceReport++
		if sinceReport < every {
			continue
		}
		sinceReport = 0
		now := time.Now()
		if sc.OnProgress != nil {
			interval := now.Sub(prev)
			elapsed := now.Sub(start)
			estimated := interval * time.Duration(expectedReports)
			sc.OnProgress(Progress{
				Done:      len(board),
				Total:     total,
				Window:    every,
				Elapsed:   elapsed,
				Interval:  interval,
				Estimated: estimated,
				Remaining: estimated - elapsed,
				Percent:   int(math.Round(100 * float64(len(board)) / float64(total))),
			})
		}
		prev = now
	}
	return board, nil
}
