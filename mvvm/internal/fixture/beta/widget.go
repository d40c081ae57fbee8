// Package beta holds a widget view-model used to exercise template key collisions.
package beta

import tea "github.com/charmbracelet/bubbletea"

type WidgetViewModel struct {
	Label string
}

func NewWidgetViewModel() *WidgetViewModel {
	return &WidgetViewModel{Label: "beta"}
}

type WidgetView struct {
	vm *WidgetViewModel
}

func NewWidgetView(vm *WidgetViewModel) *WidgetView {
	return &WidgetView{vm: vm}
}

func (v *WidgetView) Init() tea.Cmd { return nil }

func (v *WidgetView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *WidgetView) View() string { return "beta widget: " + v.vm.Label }
