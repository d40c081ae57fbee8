package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iVampireSP/vmwire/internal/demo/about"
	"github.com/iVampireSP/vmwire/internal/demo/counter"
	"github.com/iVampireSP/vmwire/internal/wiring"
	"github.com/iVampireSP/vmwire/mvvm"
)

var (
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// shell is the composition root: it owns the templates and the container, and
// hosts one page at a time in a presenter.
type shell struct {
	presenter *mvvm.Presenter
	pages     []any
	current   int
	err       error
}

func newShell(logger *slog.Logger) (*shell, error) {
	catalog, err := wiring.Catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	templates := mvvm.NewTemplates()
	container := mvvm.NewDigContainer(nil)
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(catalog, templates, container)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	logger.Debug("wired", "templates", len(report.Templates), "bindings", len(report.Bindings))

	counterVM, err := mvvm.Get[counter.ICounterViewModel](container)
	if err != nil {
		return nil, err
	}
	aboutVM, err := mvvm.Get[about.IAboutViewModel](container)
	if err != nil {
		return nil, err
	}

	s := &shell{
		presenter: mvvm.NewPresenter(templates),
		pages:     []any{counterVM, aboutVM},
	}
	if _, err := s.presenter.SetContent(s.pages[0]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shell) Init() tea.Cmd {
	return s.presenter.Init()
}

func (s *shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "tab":
			s.current = (s.current + 1) % len(s.pages)
			next := s.pages[s.current]
			return s, func() tea.Msg { return mvvm.ContentMsg{ViewModel: next} }
		}
	case mvvm.ContentMsg:
		s.err = nil
	case mvvm.ContentErrorMsg:
		s.err = msg.Err
		return s, nil
	}

	_, cmd := s.presenter.Update(msg)
	return s, cmd
}

func (s *shell) View() string {
	body := s.presenter.View()
	if s.err != nil {
		body += "\n\n" + errStyle.Render(s.err.Error())
	}
	return frameStyle.Render(body + "\n\n" + hintStyle.Render("tab next page, q quit"))
}
