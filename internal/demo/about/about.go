// Package about shows what is running.
package about

import (
	"runtime"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type IAboutViewModel interface {
	Name() string
	Version() string
	GoVersion() string
}

// AboutViewModel is immutable, so it is passed by value.
type AboutViewModel struct {
	name    string
	version string
}

func NewAboutViewModel() AboutViewModel {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	return AboutViewModel{name: "vmwire demo", version: version}
}

func (vm AboutViewModel) Name() string      { return vm.name }
func (vm AboutViewModel) Version() string   { return vm.version }
func (vm AboutViewModel) GoVersion() string { return runtime.Version() }

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Faint(true).Width(10)
)

type AboutView struct {
	vm AboutViewModel
}

func NewAboutView(vm AboutViewModel) AboutView {
	return AboutView{vm: vm}
}

func (v AboutView) Init() tea.Cmd { return nil }

func (v AboutView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v AboutView) View() string {
	return nameStyle.Render(v.vm.Name()) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("version"), v.vm.Version()) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("go"), v.vm.GoVersion())
}
