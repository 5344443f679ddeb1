package main

import (
	"strings"
	"testing"

	"github.com/lowellgb/watchwords/internal/puzzle"
)

func TestRootCmdExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "watchwords" {
		t.Errorf("rootCmd.Use = %q, want 'watchwords'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("rootCmd.Short should not be empty")
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	cmdNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdNames[strings.Fields(cmd.Use)[0]] = true
	}

	expectedCmds := []string{"generate", "explore", "letters", "search", "history"}
	for _, name := range expectedCmds {
		if !cmdNames[name] {
			t.Errorf("rootCmd should have subcommand %q", name)
		}
	}
}

func TestGenerateCmdFlags(t *testing.T) {
	lettersFlag := generateCmd.Flags().Lookup("letters")
	if lettersFlag == nil {
		t.Fatal("generate should have a 'letters' flag")
	}
	if lettersFlag.Shorthand != "l" {
		t.Errorf("letters flag shorthand = %q, want 'l'", lettersFlag.Shorthand)
	}

	if generateCmd.Flags().Lookup("output") == nil {
		t.Error("generate should have an 'output' flag")
	}
	if generateCmd.Flags().Lookup("seed") == nil {
		t.Error("generate should have a 'seed' flag")
	}
}

func TestExploreCmdFlags(t *testing.T) {
	sizeFlag := exploreCmd.Flags().Lookup("size")
	if sizeFlag == nil {
		t.Fatal("explore should have a 'size' flag")
	}
	if sizeFlag.Shorthand != "k" {
		t.Errorf("size flag shorthand = %q, want 'k'", sizeFlag.Shorthand)
	}

	for _, name := range []string{"exclude", "output", "tui", "seed"} {
		if exploreCmd.Flags().Lookup(name) == nil {
			t.Errorf("explore should have a %q flag", name)
		}
	}
}

func TestBuildWordTable(t *testing.T) {
	matcher := puzzle.NewMatcher([]string{"CAT", "CATS", "DOG", "ACT", "ABBA"})
	set, err := puzzle.NewLetterSet("ABCT")
	if err != nil {
		t.Fatal(err)
	}

	table := buildWordTable(matcher, set, 1)

	if !strings.Contains(table, "static const char _valid_letters[] = {'A', 'B', 'C', 'T'};") {
		t.Errorf("missing letters declaration:\n%s", table)
	}
	// CAT, ACT and ABBA match; two of them have all-distinct letters.
	if !strings.Contains(table, "// Number of words found: 3") {
		t.Errorf("wrong word count:\n%s", table)
	}
	if !strings.Contains(table, "_num_unique_words = 2;") {
		t.Errorf("wrong unique count:\n%s", table)
	}
	for _, w := range []string{`"CAT"`, `"ACT"`, `"ABBA"`} {
		if !strings.Contains(table, w) {
			t.Errorf("word %s missing from table:\n%s", w, table)
		}
	}
}

func TestBuildWordTableDeterministicWithSeed(t *testing.T) {
	matcher := puzzle.NewMatcher([]string{"CAT", "ACT", "TACT", "ABBA", "BAT", "TAB", "CAB"})
	set, err := puzzle.NewLetterSet("ABCT")
	if err != nil {
		t.Fatal(err)
	}

	if a, b := buildWordTable(matcher, set, 99), buildWordTable(matcher, set, 99); a != b {
		t.Errorf("same seed produced different tables:\n%s\nvs\n%s", a, b)
	}
}

func TestBuildWordTableGlyphSubstitution(t *testing.T) {
	matcher := puzzle.NewMatcher([]string{"DODGE"})
	set, err := puzzle.NewLetterSet("DEGO")
	if err != nil {
		t.Fatal(err)
	}

	table := buildWordTable(matcher, set, 1)
	if !strings.Contains(table, `"dOdGE"`) {
		t.Errorf("expected glyph-substituted word \"dOdGE\" in table:\n%s", table)
	}
	if strings.Contains(table, `"DODGE"`) {
		t.Errorf("unsubstituted word leaked into table:\n%s", table)
	}
}
