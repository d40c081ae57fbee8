package mvvm

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ContentMsg asks a Presenter to show a different view-model.
type ContentMsg struct {
	ViewModel any
}

// ContentErrorMsg reports that a Presenter could not build a view for its new content.
type ContentErrorMsg struct {
	Err error
}

// Presenter hosts the view built from the templates for its current view-model.
type Presenter struct {
	templates *Templates
	content   any
	view      tea.Model
}

// NewPresenter creates an empty presenter backed by templates.
func NewPresenter(templates *Templates) *Presenter {
	return &Presenter{templates: templates}
}

// SetContent swaps the presented view-model. On error the previous content stays.
// The returned command is the new view's Init.
func (p *Presenter) SetContent(vm any) (tea.Cmd, error) {
	view, err := p.templates.ViewFor(vm)
	if err != nil {
		return nil, err
	}
	p.content = vm
	p.view = view
	return view.Init(), nil
}

// Content returns the presented view-model.
func (p *Presenter) Content() any {
	return p.content
}

func (p *Presenter) Init() tea.Cmd {
	if p.view == nil {
		return nil
	}
	return p.view.Init()
}

func (p *Presenter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(ContentMsg); ok {
		cmd, err := p.SetContent(m.ViewModel)
		if err != nil {
			return p, func() tea.Msg { return ContentErrorMsg{Err: err} }
		}
		return p, cmd
	}
	if p.view == nil {
		return p, nil
	}
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return p, cmd
}

func (p *Presenter) View() string {
	if p.view == nil {
		return ""
	}
	return p.view.View()
}
