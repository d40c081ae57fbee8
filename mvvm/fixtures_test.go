package mvvm_test

import (
	"bytes"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iVampireSP/vmwire/mvvm"
)

// Counter: view, interface and view-model all present.

type ICounterViewModel interface {
	Count() int
	Increment()
}

type CounterViewModel struct {
	count int
}

func NewCounterViewModel() *CounterViewModel {
	return &CounterViewModel{}
}

func (vm *CounterViewModel) Count() int { return vm.count }
func (vm *CounterViewModel) Increment() { vm.count++ }

type CounterView struct {
	vm ICounterViewModel
}

func NewCounterView(vm *CounterViewModel) *CounterView {
	return &CounterView{vm: vm}
}

func (v *CounterView) Init() tea.Cmd { return nil }

func (v *CounterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(incrementMsg); ok {
		v.vm.Increment()
	}
	return v, nil
}

func (v *CounterView) View() string { return fmt.Sprintf("count: %d", v.vm.Count()) }

type incrementMsg struct{}

// Settings: interface only.

type ISettingsViewModel interface {
	Theme() string
}

type SettingsViewModel struct{}

func NewSettingsViewModel() (*SettingsViewModel, error) { return &SettingsViewModel{}, nil }

func (vm *SettingsViewModel) Theme() string { return "dark" }

// About: view only.

type AboutViewModel struct{ Version string }

type AboutView struct{ vm AboutViewModel }

func NewAboutView(vm AboutViewModel) *AboutView { return &AboutView{vm: vm} }

func (v *AboutView) Init() tea.Cmd                       { return nil }
func (v *AboutView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *AboutView) View() string                        { return "about " + v.vm.Version }

// Broken: view declared without a view constructor.

type BrokenViewModel struct{}

type BrokenView struct{}

func NewBrokenView() *BrokenView { return &BrokenView{} }

// Mismatch: interface the view-model does not implement.

type IMismatchViewModel interface {
	Missing()
}

type MismatchViewModel struct{}

func NewMismatchViewModel() *MismatchViewModel { return &MismatchViewModel{} }

// Not view-models.

type Helper struct{}

func NewHelper() *Helper { return &Helper{} }

type IHelper interface{}

type HelperView struct{}

func (v *HelperView) Init() tea.Cmd                       { return nil }
func (v *HelperView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *HelperView) View() string                        { return "" }

// An interface whose name ends in ViewModel never qualifies on its own.
type IReportViewModel interface{}

type IReportView struct{}

func (v *IReportView) Init() tea.Cmd                       { return nil }
func (v *IReportView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *IReportView) View() string                        { return "" }

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// recorder is a Container that remembers its registrations.
type recorder struct {
	bindings []mvvm.Binding
	err      error
}

func (r *recorder) RegisterType(iface, impl mvvm.Type) error {
	if r.err != nil {
		return r.err
	}
	r.bindings = append(r.bindings, mvvm.Binding{Interface: iface.Name(), Implementation: impl.Name()})
	return nil
}
