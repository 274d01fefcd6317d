package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

type stubSearchService struct {
	matches   []domain.Match
	err       error
	lastScope domain.Scope
}

func (s *stubSearchService) Search(
	_ context.Context, _ string, scope domain.Scope, _ domain.SearchOptions,
) ([]domain.Match, error) {
	s.lastScope = scope
	return s.matches, s.err
}

func newTestApp(t *testing.T, search *stubSearchService) *App {
	t.Helper()

	app, err := NewApp(context.Background(), search, []string{"ipc", "crpc"})
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresSearchService(t *testing.T) {
	_, err := NewApp(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestApp_DefaultScopeIsAll(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})
	assert.True(t, app.scope().All)
}

func TestApp_TabCyclesCorpora(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})

	app.cycleCorpus()
	assert.Equal(t, "ipc", app.scope().Corpus)

	app.cycleCorpus()
	assert.Equal(t, "crpc", app.scope().Corpus)

	app.cycleCorpus()
	assert.True(t, app.scope().All)
}

func TestApp_EnterRunsSearch(t *testing.T) {
	search := &stubSearchService{
		matches: []domain.Match{{Corpus: "ipc", Number: "378", Title: "Theft", Score: 0.8}},
	}
	app := newTestApp(t, search)
	app.input.SetValue("taking property")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	require.NotNil(t, cmd)
	assert.True(t, app.searching)

	// Execute the async command and feed its message back.
	msg := cmd()
	model, _ = app.Update(msg)
	app = model.(*App)

	assert.False(t, app.searching)
	require.Len(t, app.matches, 1)
	assert.Equal(t, "378", app.matches[0].Number)
}

func TestApp_EnterWithEmptyQueryDoesNothing(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, app.searching)
}

func TestApp_SearchUsesSelectedCorpus(t *testing.T) {
	search := &stubSearchService{}
	app := newTestApp(t, search)
	app.cycleCorpus()
	app.input.SetValue("theft")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "ipc", search.lastScope.Corpus)
}

func TestApp_SearchErrorIsShown(t *testing.T) {
	search := &stubSearchService{err: errors.New("embedder offline")}
	app := newTestApp(t, search)
	app.input.SetValue("theft")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	model, _ := app.Update(cmd())
	app = model.(*App)

	require.Error(t, app.err)
	assert.Contains(t, app.View(), "embedder offline")
}

func TestApp_NavigationStaysInBounds(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})
	app.matches = []domain.Match{
		{Number: "1"}, {Number: "2"},
	}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)
}

func TestApp_EscQuits(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewRendersMatches(t *testing.T) {
	app := newTestApp(t, &stubSearchService{})
	app.matches = []domain.Match{
		{Corpus: "ipc", Number: "302", Title: "Punishment for murder", Description: "Whoever commits murder", Score: 0.91},
	}

	view := app.View()
	assert.Contains(t, view, "302")
	assert.Contains(t, view, "Punishment for murder")
	assert.Contains(t, view, "0.910")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long…", truncate("long text", 5))
}
