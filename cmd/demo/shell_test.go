package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iVampireSP/vmwire/internal/demo/about"
	"github.com/iVampireSP/vmwire/internal/demo/counter"
	"github.com/iVampireSP/vmwire/mvvm"
)

func newTestShell(t *testing.T) *shell {
	t.Helper()
	s, err := newShell(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

// send feeds msg through the shell and any command it returns, one level deep.
func send(s *shell, msg tea.Msg) tea.Cmd {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	if next := cmd(); next != nil {
		if _, ok := next.(mvvm.ContentMsg); ok {
			_, cmd = s.Update(next)
		}
	}
	return cmd
}

func TestShell_StartsOnCounter(t *testing.T) {
	s := newTestShell(t)

	assert.Implements(t, (*counter.ICounterViewModel)(nil), s.presenter.Content())
	assert.Contains(t, s.View(), "count: 0")
}

func TestShell_PagesShareViewModels(t *testing.T) {
	s := newTestShell(t)

	send(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	assert.Contains(t, s.View(), "count: 1")

	send(s, tea.KeyMsg{Type: tea.KeyTab})
	assert.Implements(t, (*about.IAboutViewModel)(nil), s.presenter.Content())
	assert.Contains(t, s.View(), "vmwire demo")

	send(s, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, s.View(), "count: 1")
}

func TestShell_ContentError(t *testing.T) {
	s := newTestShell(t)

	s.Update(mvvm.ContentErrorMsg{Err: errors.New("no view")})
	assert.Contains(t, s.View(), "no view")
	assert.Contains(t, s.View(), "count: 0")
}

func TestShell_Quit(t *testing.T) {
	s := newTestShell(t)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
