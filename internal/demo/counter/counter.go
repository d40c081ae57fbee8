// Package counter is a keyboard-driven counter page.
package counter

// ICounterViewModel is the counter state the rest of the application sees.
type ICounterViewModel interface {
	Count() int
	Increment()
	Decrement()
	Reset()
}

type CounterViewModel struct {
	count int
}

// NewCounterViewModel returns a counter that never goes below zero.
func NewCounterViewModel() *CounterViewModel {
	return &CounterViewModel{}
}

func (vm *CounterViewModel) Count() int { return vm.count }

func (vm *CounterViewModel) Increment() { vm.count++ }

func (vm *CounterViewModel) Decrement() {
	if vm.count > 0 {
		vm.count--
	}
}

func (vm *CounterViewModel) Reset() { vm.count = 0 }
