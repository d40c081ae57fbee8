package mvvm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/iVampireSP/vmwire/mvvm"
)

func TestDigContainer_ResolvesBoundInterfaces(t *testing.T) {
	container := mvvm.NewDigContainer(dig.New())
	logger, _ := newLogger()

	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(fullCatalog(t), mvvm.NewTemplates(), container)
	require.NoError(t, err)
	require.Len(t, report.Bindings, 2)

	counter, err := mvvm.Get[ICounterViewModel](container)
	require.NoError(t, err)
	require.IsType(t, &CounterViewModel{}, counter)

	// dig keeps one instance per container
	counter.Increment()
	again, err := mvvm.Get[ICounterViewModel](container)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Count())

	settings, err := mvvm.Get[ISettingsViewModel](container)
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme())

	// only the interface is provided, not the concrete type
	_, err = mvvm.Get[*CounterViewModel](container)
	assert.Error(t, err)
}

func TestDigContainer_RegisterTypeErrors(t *testing.T) {
	container := mvvm.NewDigContainer(nil)
	require.NotNil(t, container.Dig())

	err := container.RegisterType(mvvm.Concrete(NewHelper), mvvm.Concrete(NewCounterViewModel))
	assert.ErrorIs(t, err, mvvm.ErrNotInterface)

	err = container.RegisterType(mvvm.Interface[ICounterViewModel](), mvvm.Interface[ISettingsViewModel]())
	assert.ErrorIs(t, err, mvvm.ErrInvalidConstructor)
}

func TestDigContainer_RegisterTwiceFails(t *testing.T) {
	container := mvvm.NewDigContainer(nil)
	iface := mvvm.Interface[ICounterViewModel]()
	impl := mvvm.Concrete(NewCounterViewModel)

	require.NoError(t, container.RegisterType(iface, impl))
	assert.Error(t, container.RegisterType(iface, impl))
}
