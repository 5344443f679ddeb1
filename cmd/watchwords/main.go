package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/lowellgb/watchwords/internal/dictionary"
	"github.com/lowellgb/watchwords/internal/explore"
	"github.com/lowellgb/watchwords/internal/puzzle"
	"github.com/lowellgb/watchwords/internal/render"
	"github.com/lowellgb/watchwords/internal/storage"
	"github.com/lowellgb/watchwords/internal/tui"
	"github.com/lowellgb/watchwords/pkg/config"
	"github.com/lowellgb/watchwords/pkg/timefmt"
)

var (
	cfgFile string
	cfg     config.Config

	// Flags for generate
	generateLetters string
	generateOutput  string
	generateSeed    int64

	// Flags for explore
	exploreSize    int
	exploreExclude string
	exploreOutput  string
	exploreTUI     bool
	exploreSeed    int64

	// Flags for history
	historyCount int
)

var rootCmd = &cobra.Command{
	Use:   "watchwords",
	Short: "Word-list generator for the watch-face word game",
	Long: `Generates the C word tables the watch-face word game compiles in:
filters the dictionary down to words spellable from a chosen letter set,
and can exhaustively search for the letter combination that spells the
most words.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		setupLogging(cfg.Logging.Level)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit the C word table for a letter set",
	Long: `Emit the _valid_letters and _legal_words C declarations for a letter set.

Examples:
  watchwords generate                      # Default ACEILNOPRS set
  watchwords generate -l AEINORST         # Custom letters
  watchwords generate -o wordle_data.h    # Write to a file
  watchwords generate --seed 7            # Deterministic shuffle`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Score every letter combination and report the best",
	Long: `Enumerate every combination of letters of the given size, count how many
dictionary words each can spell, and write the full scoreboard sorted by
score. The best combination's word table is printed when the pass finishes.

Examples:
  watchwords explore                 # 10 letters, D and T excluded
  watchwords explore -k 12           # Larger sets
  watchwords explore --tui           # Live progress view
  watchwords explore -o combos.txt   # Scoreboard destination`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplore()
	},
}

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Show how many words use each letter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLetters()
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exploration runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to watchwords.yaml")

	generateCmd.Flags().StringVarP(&generateLetters, "letters", "l", "", "Letter set to generate for (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the word table to a file instead of stdout")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Shuffle seed (0 = time-based)")

	exploreCmd.Flags().IntVarP(&exploreSize, "size", "k", 0, "Letters per combination (default from config)")
	exploreCmd.Flags().StringVar(&exploreExclude, "exclude", "", "Letters to leave out of the alphabet (default from config)")
	exploreCmd.Flags().StringVarP(&exploreOutput, "output", "o", "", "Scoreboard file (default from config)")
	exploreCmd.Flags().BoolVar(&exploreTUI, "tui", false, "Show a live progress view")
	exploreCmd.Flags().Int64Var(&exploreSeed, "seed", 0, "Shuffle seed for the final word table (0 = time-based)")

	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "Number of runs to show")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

func loadMatcher() (*dictionary.Dictionary, *puzzle.Matcher, error) {
	dict, err := dictionary.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return dict, puzzle.NewMatcher(dict.Words()), nil
}

// buildWordTable runs the single-combination pipeline: filter, glyph fix,
// shuffle, uniqueness partition, render.
func buildWordTable(matcher *puzzle.Matcher, set puzzle.LetterSet, seed int64) string {
	words := render.ReplaceGlyphs(matcher.Filter(set))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	puzzle.Shuffle(rand.New(rand.NewSource(seed)), words)
	unique, repeated := puzzle.Partition(words)
	return render.Source(set, append(unique, repeated...), len(unique))
}

func runGenerate() error {
	_, matcher, err := loadMatcher()
	if err != nil {
		return err
	}

	letters := generateLetters
	if letters == "" {
		letters = cfg.Generate.Letters
	}
	set, err := puzzle.NewLetterSet(letters)
	if err != nil {
		return err
	}

	table := buildWordTable(matcher, set, generateSeed)

	output := generateOutput
	if output == "" {
		output = cfg.Generate.Output
	}
	if output == "" {
		fmt.Print(table)
		return nil
	}
	if err := os.WriteFile(output, []byte(table), 0644); err != nil {
		return fmt.Errorf("failed to write word table: %w", err)
	}
	slog.Info("word table written", "path", output, "letters", set.String())
	return nil
}

func runExplore() error {
	_, matcher, err := loadMatcher()
	if err != nil {
		return err
	}

	size := exploreSize
	if size == 0 {
		size = cfg.Explore.Size
	}
	exclude := exploreExclude
	if exclude == "" {
		exclude = cfg.Explore.Exclude
	}
	output := exploreOutput
	if output == "" {
		output = cfg.Explore.Output
	}

	alphabet := puzzle.Alphabet(exclude)
	if size > len(alphabet) {
		return fmt.Errorf("%w: %d letters requested from a %d-letter alphabet", puzzle.ErrInvalidLetterSet, size, len(alphabet))
	}

	slog.Info("starting combination search",
		"size", size,
		"alphabet", string(alphabet),
		"excluded", strings.ToUpper(exclude))

	started := time.Now()
	var board explore.Scoreboard
	if exploreTUI {
		board, err = exploreWithTUI(matcher, alphabet, size)
	} else {
		board, err = exploreWithLog(matcher, alphabet, size)
	}
	if err != nil {
		return err
	}
	if board == nil {
		// User aborted; nothing was written.
		return nil
	}
	elapsed := time.Since(started)

	board.SortByScore()
	best, err := board.Best()
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(render.Scoreboard(board)), 0644); err != nil {
		return fmt.Errorf("failed to write scoreboard: %w", err)
	}
	slog.Info("combination search finished",
		"combos", len(board),
		"best", best.Letters.String(),
		"score", best.Score,
		"elapsed", timefmt.Format(elapsed),
		"scoreboard", output)

	fmt.Printf("The best combination is: %s (%d words)\n\n", best.Letters.String(), best.Score)
	fmt.Print(buildWordTable(matcher, best.Letters, exploreSeed))

	recordRun(storage.Run{
		StartedAt:   started,
		Size:        size,
		Excluded:    strings.ToUpper(exclude),
		Combos:      len(board),
		BestLetters: best.Letters.String(),
		BestScore:   best.Score,
		Duration:    elapsed,
	})
	return nil
}

func exploreWithLog(matcher *puzzle.Matcher, alphabet []byte, size int) (explore.Scoreboard, error) {
	scorer := &explore.Scorer{
		Matcher:  matcher,
		Alphabet: alphabet,
		Size:     size,
		OnProgress: func(p explore.Progress) {
			fmt.Fprintf(os.Stderr,
				"Time Passed: %s | Amount of time for %d items: %s | Estimate for total: %s | items Left %d | Percent Complete %d%% | Estimated Time Left : %s\n",
				timefmt.Format(p.Elapsed),
				p.Window,
				timefmt.Format(p.Interval),
				timefmt.Format(p.Estimated),
				p.ItemsLeft(),
				p.Percent,
				timefmt.Format(p.Remaining))
		},
	}
	return scorer.Run(context.Background())
}

func exploreWithTUI(matcher *puzzle.Matcher, alphabet []byte, size int) (explore.Scoreboard, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tea.Msg)
	var board explore.Scoreboard
	var runErr error

	go func() {
		scorer := &explore.Scorer{
			Matcher:  matcher,
			Alphabet: alphabet,
			Size:     size,
			OnProgress: func(p explore.Progress) {
				events <- tui.ProgressMsg(p)
			},
		}
		board, runErr = scorer.Run(ctx)
		events <- tui.DoneMsg{Err: runErr}
	}()

	p := tea.NewProgram(tui.New(size, string(alphabet), events, cancel), tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := model.(tui.Model); ok && m.Cancelled {
		return nil, nil
	}
	if runErr != nil {
		return nil, runErr
	}
	return board, nil
}

func recordRun(run storage.Run) {
	store, err := storage.New()
	if err != nil {
		slog.Warn("run history unavailable", "error", err)
		return
	}
	defer store.Close()
	if err := store.RecordRun(run); err != nil {
		slog.Warn("failed to record run", "error", err)
	}
}

func runLetters() error {
	dict, _, err := loadMatcher()
	if err != nil {
		return err
	}
	fmt.Print(render.LetterUsageTable(dict.LetterUsage()))
	return nil
}

func runSearch(query string) error {
	dict, _, err := loadMatcher()
	if err != nil {
		return err
	}

	matches := fuzzy.Find(strings.ToUpper(query), dict.Words())
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	limit := 10
	if len(matches) < limit {
		limit = len(matches)
	}
	for _, m := range matches[:limit] {
		fmt.Println(m.Str)
	}
	return nil
}

func runHistory() error {
	store, err := storage.New()
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(historyCount)
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No exploration runs recorded yet.")
		return nil
	}

	fmt.Printf("%-20s %-5s %-9s %-12s %-6s %s\n", "Started", "Size", "Excluded", "Best", "Score", "Duration")
	for _, r := range runs {
		fmt.Printf("%-20s %-5d %-9s %-12s %-6d %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Size,
			r.Excluded,
			r.BestLetters,
			r.BestScore,
			timefmt.Format(r.Duration))
	}
	return nil
}
