// Package tui provides the interactive terminal search interface.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
)

// ErrMissingSearchService is returned when no search service is provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// styles holds the lipgloss styles used by the view.
type appStyles struct {
	Title    lipgloss.Style
	Corpus   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Score    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() appStyles {
	return appStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Corpus:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
	}
}

// searchCompleted carries the outcome of an asynchronous search.
type searchCompleted struct {
	matches []domain.Match
	err     error
}

// App is the TUI application model following the Elm architecture.
type App struct {
	search  driving.SearchService
	corpora []string
	ctx     context.Context
	styles  appStyles

	input    textinput.Model
	matches  []domain.Match
	selected int

	// corpusIdx indexes into corpora; -1 means all corpora.
	corpusIdx int

	searching bool
	err       error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application.
func NewApp(ctx context.Context, search driving.SearchService, corpora []string) (*App, error) {
	if search == nil {
		return nil, ErrMissingSearchService
	}

	input := textinput.New()
	input.Placeholder = "describe the offence or situation"
	input.Focus()
	input.CharLimit = 256

	return &App{
		search:    search,
		corpora:   corpora,
		ctx:       ctx,
		styles:    defaultStyles(),
		input:     input,
		corpusIdx: -1,
		width:     80,
		height:    24,
	}, nil
}

// scope returns the currently selected search scope.
func (a *App) scope() domain.Scope {
	if a.corpusIdx < 0 || a.corpusIdx >= len(a.corpora) {
		return domain.AllCorpora()
	}
	return domain.SingleCorpus(a.corpora[a.corpusIdx])
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case searchCompleted:
		a.searching = false
		a.err = msg.err
		a.matches = msg.matches
		a.selected = 0
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "enter":
		query := a.input.Value()
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		a.err = nil
		return a, a.runSearch(query)

	case "tab":
		a.cycleCorpus()
		return a, nil

	case "down", "ctrl+n":
		if a.selected < len(a.matches)-1 {
			a.selected++
		}
		return a, nil

	case "up", "ctrl+p":
		if a.selected > 0 {
			a.selected--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// cycleCorpus advances the corpus selector: all, then each corpus in
// turn, then back to all.
func (a *App) cycleCorpus() {
	a.corpusIdx++
	if a.corpusIdx >= len(a.corpora) {
		a.corpusIdx = -1
	}
}

// runSearch performs the search asynchronously.
func (a *App) runSearch(query string) tea.Cmd {
	scope := a.scope()
	return func() tea.Msg {
		matches, err := a.search.Search(a.ctx, query, scope, domain.SearchOptions{})
		return searchCompleted{matches: matches, err: err}
	}
}

// View renders the application.
func (a *App) View() string {
	var b []byte

	b = append(b, a.styles.Title.Render("Sanhita")...)
	b = append(b, "  "...)
	b = append(b, a.styles.Corpus.Render("["+a.scope().String()+"]")...)
	b = append(b, '\n', '\n')

	b = append(b, a.input.View()...)
	b = append(b, '\n', '\n')

	switch {
	case a.searching:
		b = append(b, a.styles.Muted.Render("Searching...")...)
		b = append(b, '\n')
	case a.err != nil:
		b = append(b, a.styles.Error.Render("Error: "+a.err.Error())...)
		b = append(b, '\n')
	case len(a.matches) == 0:
		b = append(b, a.styles.Muted.Render("No results.")...)
		b = append(b, '\n')
	default:
		for i, m := range a.matches {
			line := fmt.Sprintf("%s §%s  %s", m.Corpus, m.Number, m.Title)
			score := a.styles.Score.Render(fmt.Sprintf(" %.3f", m.Score))
			if i == a.selected {
				b = append(b, a.styles.Selected.Render("> "+line)...)
			} else {
				b = append(b, a.styles.Normal.Render("  "+line)...)
			}
			b = append(b, score...)
			b = append(b, '\n')
			if i == a.selected && m.Description != "" {
				b = append(b, a.styles.Muted.Render("    "+truncate(m.Description, a.width-6))...)
				b = append(b, '\n')
			}
		}
	}

	b = append(b, '\n')
	b = append(b, a.styles.Help.Render("enter search · tab corpus · ↑/↓ select · esc quit")...)
	return string(b)
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, search driving.SearchService, corpora []string) error {
	app, err := NewApp(ctx, search, corpora)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
