package mvvm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iVampireSP/vmwire/mvvm"
	"github.com/iVampireSP/vmwire/mvvm/internal/fixture/alpha"
	"github.com/iVampireSP/vmwire/mvvm/internal/fixture/beta"
)

func fullCatalog(t *testing.T) *mvvm.Catalog {
	t.Helper()
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(NewCounterViewModel),
		mvvm.Interface[ICounterViewModel](),
		mvvm.View(NewCounterView),

		mvvm.Concrete(NewSettingsViewModel),
		mvvm.Interface[ISettingsViewModel](),

		mvvm.Concrete(func() AboutViewModel { return AboutViewModel{Version: "1.0"} }),
		mvvm.View(NewAboutView),

		mvvm.Concrete(NewHelper),
		mvvm.Interface[IHelper](),
		mvvm.View(func(*Helper) *HelperView { return &HelperView{} }),

		mvvm.Interface[IReportViewModel](),
		mvvm.View(func(any) *IReportView { return &IReportView{} }),
	))
	return c
}

func TestResolve_TemplatesAndBindings(t *testing.T) {
	logger, _ := newLogger()
	store := mvvm.NewTemplates()
	rec := &recorder{}

	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(fullCatalog(t), store, rec)
	require.NoError(t, err)

	var pairs []string
	for _, tpl := range report.Templates {
		pairs = append(pairs, tpl.DataType.Name+"->"+tpl.ViewType.Name)
	}
	assert.Equal(t, []string{"CounterViewModel->CounterView", "AboutViewModel->AboutView"}, pairs)
	assert.Equal(t, 2, store.Len())

	var bound []string
	for _, b := range rec.bindings {
		bound = append(bound, b.Interface.Name+"->"+b.Implementation.Name)
	}
	assert.Equal(t, []string{"ICounterViewModel->CounterViewModel", "ISettingsViewModel->SettingsViewModel"}, bound)
	assert.Equal(t, rec.bindings, report.Bindings)
	assert.Empty(t, report.Duplicates)
}

func TestResolve_ChecksAreIndependent(t *testing.T) {
	logger, _ := newLogger()
	store := mvvm.NewTemplates()
	rec := &recorder{}

	_, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(fullCatalog(t), store, rec)
	require.NoError(t, err)

	// Settings has an interface but no view.
	settings := mvvm.Concrete(NewSettingsViewModel).Name()
	assert.False(t, store.Contains(store.Key(settings)))

	// About has a view but no interface.
	about := mvvm.Concrete(func() AboutViewModel { return AboutViewModel{} }).Name()
	assert.True(t, store.Contains(store.Key(about)))
	for _, b := range rec.bindings {
		assert.NotEqual(t, about, b.Implementation)
	}
}

func TestResolve_NoQualifyingTypes(t *testing.T) {
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(NewHelper),
		mvvm.Interface[IHelper](),
		mvvm.Interface[IReportViewModel](),
	))

	store := mvvm.NewTemplates()
	rec := &recorder{}
	logger, _ := newLogger()
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, store, rec)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, rec.bindings)
	assert.Empty(t, report.Templates)
	assert.Empty(t, report.Bindings)
}

func TestResolve_EmptyAndNilCatalog(t *testing.T) {
	store := mvvm.NewTemplates()
	rec := &recorder{}
	r := mvvm.NewResolver()

	for _, c := range []*mvvm.Catalog{nil, mvvm.NewCatalog()} {
		report, err := r.Resolve(c, store, rec)
		require.NoError(t, err)
		assert.Empty(t, report.Templates)
	}
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, rec.bindings)
}

func TestResolve_DuplicateKeyKeepsFirst(t *testing.T) {
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(alpha.NewWidgetViewModel),
		mvvm.View(alpha.NewWidgetView),
		mvvm.Concrete(beta.NewWidgetViewModel),
		mvvm.View(beta.NewWidgetView),
	))

	logger, logs := newLogger()
	store := mvvm.NewTemplates(mvvm.WithKeyPolicy(mvvm.KeySimple))
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, store, nil)
	require.NoError(t, err)

	require.Len(t, report.Templates, 1)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []mvvm.TemplateKey{{Name: "WidgetViewModel"}}, report.Duplicates)
	assert.Contains(t, logs.String(), "duplicated template key")
	assert.Contains(t, logs.String(), "key=WidgetViewModel")

	// the surviving template is alpha's
	view, err := store.ViewFor(alpha.NewWidgetViewModel())
	require.NoError(t, err)
	assert.Equal(t, "alpha widget: alpha", view.View())

	_, err = store.ViewFor(beta.NewWidgetViewModel())
	assert.ErrorIs(t, err, mvvm.ErrNoTemplate)
}

func TestResolve_QualifiedKeysDoNotCollide(t *testing.T) {
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(alpha.NewWidgetViewModel),
		mvvm.View(alpha.NewWidgetView),
		mvvm.Concrete(beta.NewWidgetViewModel),
		mvvm.View(beta.NewWidgetView),
	))

	logger, _ := newLogger()
	store := mvvm.NewTemplates()
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, store, nil)
	require.NoError(t, err)
	assert.Len(t, report.Templates, 2)
	assert.Empty(t, report.Duplicates)
}

func TestResolve_PreexistingKeyIsLeftAlone(t *testing.T) {
	store := mvvm.NewTemplates()
	vm := mvvm.Concrete(NewCounterViewModel).Name()
	existing := mvvm.Template{DataType: vm, ViewType: mvvm.TypeName{Name: "Handmade"}}
	require.NoError(t, store.Add(store.Key(vm), existing))

	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(mvvm.Concrete(NewCounterViewModel), mvvm.View(NewCounterView)))

	logger, logs := newLogger()
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, store, nil)
	require.NoError(t, err)

	got, _ := store.Lookup(store.Key(vm))
	assert.Equal(t, "Handmade", got.ViewType.Name)
	assert.Len(t, report.Duplicates, 1)
	assert.Contains(t, logs.String(), "duplicated template key")
}

func TestResolve_MalformedTemplateAborts(t *testing.T) {
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(NewCounterViewModel),
		mvvm.View(NewCounterView),
		mvvm.Concrete(func() *BrokenViewModel { return &BrokenViewModel{} }),
		mvvm.Concrete(NewBrokenView),
		mvvm.Concrete(func() AboutViewModel { return AboutViewModel{} }),
		mvvm.View(NewAboutView),
	))

	logger, _ := newLogger()
	store := mvvm.NewTemplates()
	report, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, store, nil)
	assert.ErrorIs(t, err, mvvm.ErrMalformedTemplate)

	// registrations made before the failure stay; nothing after it runs
	assert.Equal(t, 1, store.Len())
	assert.Len(t, report.Templates, 1)
	about := mvvm.Concrete(func() AboutViewModel { return AboutViewModel{} }).Name()
	assert.False(t, store.Contains(store.Key(about)))
}

func TestResolve_NotImplementedAborts(t *testing.T) {
	c := mvvm.NewCatalog()
	require.NoError(t, c.Declare(
		mvvm.Concrete(NewMismatchViewModel),
		mvvm.Interface[IMismatchViewModel](),
	))

	logger, _ := newLogger()
	rec := &recorder{}
	_, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(c, nil, rec)
	assert.ErrorIs(t, err, mvvm.ErrNotImplemented)
	assert.Empty(t, rec.bindings)
}

func TestResolve_ContainerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	logger, _ := newLogger()
	rec := &recorder{err: boom}

	_, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(fullCatalog(t), nil, rec)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_ContainerFunc(t *testing.T) {
	var calls int
	fn := mvvm.ContainerFunc(func(iface, impl mvvm.Type) error {
		calls++
		assert.Equal(t, mvvm.KindInterface, iface.Kind())
		assert.Equal(t, mvvm.KindConcrete, impl.Kind())
		return nil
	})

	logger, _ := newLogger()
	_, err := mvvm.NewResolver(mvvm.WithLogger(logger)).Resolve(fullCatalog(t), nil, fn)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
