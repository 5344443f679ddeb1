// Package tui provides the live progress view for the exploratory
// combination search.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lowellgb/watchwords/internal/explore"
	"github.com/lowellgb/watchwords/pkg/timefmt"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// ProgressMsg carries one scorer telemetry snapshot into the model.
type ProgressMsg explore.Progress

// DoneMsg signals the search finished (or failed).
type DoneMsg struct {
	Err error
}

// Model renders the state of a running combination search. The scorer runs
// elsewhere and feeds the model through a message channel.
type Model struct {
	events <-chan tea.Msg
	cancel func()

	size     int
	alphabet string
	last     explore.Progress
	started  bool
	done     bool
	err      error
	width    int

	// Cancelled reports whether the user quit before the search finished.
	Cancelled bool
}

// New builds a progress model. cancel is invoked when the user quits early;
// events delivers ProgressMsg and a final DoneMsg.
func New(size int, alphabet string, events <-chan tea.Msg, cancel func()) Model {
	return Model{events: events, cancel: cancel, size: size, alphabet: alphabet}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent
}

func (m Model) waitForEvent() tea.Msg {
	return <-m.events
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Cancelled = true
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case ProgressMsg:
		m.last = explore.Progress(msg)
		m.started = true
		return m, m.waitForEvent

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 Combination Search"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n%s %s\n\n",
		labelStyle.Render("Set size:"),
		valueStyle.Render(fmt.Sprintf("%d", m.size)),
		labelStyle.Render("Alphabet:"),
		valueStyle.Render(m.alphabet),
	)

	if !m.started {
		b.WriteString(labelStyle.Render("Enumerating..."))
		b.WriteString("\n")
	} else {
		content := fmt.Sprintf(
			"%s\n\n%s %s\n%s %s\n%s %s\n%s %s",
			m.renderBar(),
			labelStyle.Render("Elapsed:"),
			valueStyle.Render(timefmt.Format(m.last.Elapsed)),
			labelStyle.Render("Remaining:"),
			valueStyle.Render(timefmt.Format(m.last.Remaining)),
			labelStyle.Render("Scored:"),
			valueStyle.Render(fmt.Sprintf("%d / %d", m.last.Done, m.last.Total)),
			labelStyle.Render("Items left:"),
			valueStyle.Render(fmt.Sprintf("%d", m.last.ItemsLeft())),
		)
		b.WriteString(boxStyle.Render(content))
		b.WriteString("\n")
	}

	if m.done && m.err != nil {
		fmt.Fprintf(&b, "\nError: %v\n", m.err)
	}

	b.WriteString(helpStyle.Render("q: abort"))
	return b.String()
}

func (m Model) renderBar() string {
	width := 40
	if m.width > 0 && m.width-20 < width {
		width = m.width - 20
	}
	if width < 10 {
		width = 10
	}

	filled := width * m.last.Percent / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", barStyle.Render(bar), valueStyle.Render(fmt.Sprintf("%d%%", m.last.Percent)))
}
