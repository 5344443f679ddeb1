package explore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lowellgb/watchwords/internal/puzzle"
)

var testWords = []string{"CAT", "CATS", "DOG", "ACT", "TACT", "TOGA", "GOAT"}

func newScorer(t *testing.T, alphabet string, size int) *Scorer {
	t.Helper()
	return &Scorer{
		Matcher:  puzzle.NewMatcher(testWords),
		Alphabet: []byte(alphabet),
		Size:     size,
	}
}

func TestScorerRun(t *testing.T) {
	sc := newScorer(t, "ACGOT", 3)
	board, err := sc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// C(5,3) combinations, in enumeration order.
	if len(board) != 10 {
		t.Fatalf("scoreboard has %d entries, want 10", len(board))
	}
	for i, e := range board {
		if e.Index != i {
			t.Errorf("entry %d has Index %d", i, e.Index)
		}
	}

	// ACT spells CAT, ACT and TACT.
	found := false
	for _, e := range board {
		if e.Letters.String() == "ACT" {
			found = true
			if e.Score != 3 {
				t.Errorf("ACT score = %d, want 3", e.Score)
			}
		}
	}
	if !found {
		t.Error("combination ACT missing from scoreboard")
	}
}

func TestScorerDeterminism(t *testing.T) {
	run := func() Scoreboard {
		board, err := newScorer(t, "ACGOT", 3).Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return board
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("two runs disagree:\n%v\n%v", a, b)
	}
}

func TestScoreboardBest(t *testing.T) {
	board, err := newScorer(t, "ACGOT", 4).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	best, err := board.Best()
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range board {
		if e.Score > best.Score {
			t.Errorf("entry %s score %d beats reported best %s (%d)", e.Letters, e.Score, best.Letters, best.Score)
		}
		if e.Score == best.Score && e.Index < best.Index {
			t.Errorf("tie at score %d broken wrong: best Index %d, earlier Index %d", e.Score, best.Index, e.Index)
		}
	}
}

func TestScoreboardBestTieBreak(t *testing.T) {
	board := Scoreboard{
		{Score: 2, Index: 0},
		{Score: 5, Index: 1},
		{Score: 5, Index: 2},
		{Score: 3, Index: 3},
	}
	best, err := board.Best()
	if err != nil {
		t.Fatal(err)
	}
	if best.Index != 1 {
		t.Errorf("Best() picked Index %d, want 1 (first of the tied top scores)", best.Index)
	}
}

func TestScoreboardBestEmpty(t *testing.T) {
	if _, err := (Scoreboard{}).Best(); err == nil {
		t.Error("Best() on empty scoreboard should error")
	}
}

func TestScoreboardSortByScoreStable(t *testing.T) {
	board := Scoreboard{
		{Score: 1, Index: 0},
		{Score: 3, Index: 1},
		{Score: 3, Index: 2},
		{Score: 2, Index: 3},
		{Score: 3, Index: 4},
	}
	board.SortByScore()

	expected := []int{1, 2, 4, 3, 0}
	for i, e := range board {
		if e.Index != expected[i] {
			t.Errorf("position %d has Index %d, want %d", i, e.Index, expected[i])
		}
	}
	for i := 1; i < len(board); i++ {
		if board[i-1].Score < board[i].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestScorerProgressCadence(t *testing.T) {
	var reports []Progress
	sc := newScorer(t, "ABCDEF", 2) // 15 combinations, under the 100-report floor
	sc.OnProgress = func(p Progress) {
		reports = append(reports, p)
	}

	if _, err := sc.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Small totals report on every combination.
	if len(reports) != 15 {
		t.Fatalf("got %d progress reports, want 15", len(reports))
	}
	last := reports[len(reports)-1]
	if last.Done != 15 || last.Total != 15 {
		t.Errorf("final report Done/Total = %d/%d, want 15/15", last.Done, last.Total)
	}
	if last.Percent != 100 {
		t.Errorf("final report Percent = %d, want 100", last.Percent)
	}
	if last.ItemsLeft() != 0 {
		t.Errorf("final report ItemsLeft = %d, want 0", last.ItemsLeft())
	}
	for i, p := range reports {
		if p.Done != i+1 {
			t.Errorf("report %d has Done = %d", i, p.Done)
		}
		if p.Window != 1 {
			t.Errorf("report %d has Window = %d, want 1", i, p.Window)
		}
		if p.Elapsed < 0 || p.Interval < 0 {
			t.Errorf("report %d has negative timing: %+v", i, p)
		}
	}
}

func TestScorerReportsBound(t *testing.T) {
	count := 0
	sc := newScorer(t, "ABCDEFGHIJ", 4) // 210 combinations
	sc.Reports = 10
	sc.OnProgress = func(Progress) { count++ }

	if _, err := sc.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if count != 10 {
		t.Errorf("got %d reports for 210 combinations with Reports=10, want 10", count)
	}
}

func TestScorerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sc := newScorer(t, "ABCDEFGHIJ", 4)
	sc.Reports = 210 // report every combination
	sc.OnProgress = func(p Progress) {
		if p.Done == 5 {
			cancel()
		}
	}

	board, err := sc.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if board != nil {
		t.Errorf("cancelled run returned a partial scoreboard of %d entries", len(board))
	}
}

func TestScorerInvalidSize(t *testing.T) {
	sc := newScorer(t, "ABC", 0)
	if _, err := sc.Run(context.Background()); !errors.Is(err, puzzle.ErrInvalidLetterSet) {
		t.Errorf("Run() error = %v, want ErrInvalidLetterSet", err)
	}
}

func TestScorerOversizedAlphabetRequest(t *testing.T) {
	sc := newScorer(t, "ABC", 7)
	board, err := sc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 0 {
		t.Errorf("got %d entries for an unsatisfiable size, want 0", len(board))
	}
}
