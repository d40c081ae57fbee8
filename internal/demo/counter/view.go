package counter

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// CounterView renders a counter and maps keys onto its view-model.
type CounterView struct {
	vm ICounterViewModel
}

func NewCounterView(vm ICounterViewModel) *CounterView {
	return &CounterView{vm: vm}
}

func (v *CounterView) Init() tea.Cmd { return nil }

func (v *CounterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "+", "up", "k":
		v.vm.Increment()
	case "-", "down", "j":
		v.vm.Decrement()
	case "r":
		v.vm.Reset()
	}
	return v, nil
}

func (v *CounterView) View() string {
	return titleStyle.Render("Counter") + "\n\n" +
		countStyle.Render(fmt.Sprintf("count: %d", v.vm.Count())) + "\n\n" +
		helpStyle.Render("+/- change, r reset")
}
