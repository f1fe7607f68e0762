package startup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundswitch/internal/catalog"
	"soundswitch/internal/hotkeys"
	"soundswitch/internal/resolver"
)

type fakeCatalog struct {
	outputs []catalog.Endpoint
	inputs  []catalog.Endpoint
	err     error
}

func (f *fakeCatalog) Endpoints(kind catalog.Kind) ([]catalog.Endpoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	if kind == catalog.Input {
		return f.inputs, nil
	}
	return f.outputs, nil
}

func (f *fakeCatalog) SetDefault(ep catalog.Endpoint) error { return nil }

func binding(keys, output, input string) hotkeys.Binding {
	combo, err := hotkeys.ParseCombo(keys)
	if err != nil {
		panic(err)
	}
	return hotkeys.Binding{Combo: combo, OutputDeviceName: output, InputDeviceName: input}
}

func TestValidateAllResolved(t *testing.T) {
	cat := &fakeCatalog{
		outputs: []catalog.Endpoint{{ID: "spk", FriendlyName: "Speakers", Kind: catalog.Output}},
		inputs:  []catalog.Endpoint{{ID: "mic", FriendlyName: "Desk Mic", Kind: catalog.Input}},
	}
	bindings := []hotkeys.Binding{
		binding("Ctrl+Alt+F1", "Speakers", "Desk Mic"),
	}

	report := Validate(bindings, cat, resolver.Exact, resolver.Options{})

	assert.Empty(t, report.Unresolved)
	assert.False(t, report.HasProblems())
	assert.Equal(t, []string{"Speakers"}, report.AvailableOutput)
	assert.Equal(t, []string{"Desk Mic"}, report.AvailableInput)
}

func TestValidateOneMissingOfThree(t *testing.T) {
	cat := &fakeCatalog{
		outputs: []catalog.Endpoint{
			{ID: "spk", FriendlyName: "Speakers", Kind: catalog.Output},
			{ID: "hp", FriendlyName: "Headphones", Kind: catalog.Output},
		},
	}
	bindings := []hotkeys.Binding{
		binding("Ctrl+Alt+F1", "Speakers", ""),
		binding("Ctrl+Alt+F2", "Headphones", ""),
		binding("Ctrl+Alt+F3", "Ghost Device", ""),
	}

	report := Validate(bindings, cat, resolver.Exact, resolver.Options{})

	require.Len(t, report.Unresolved, 1)
	assert.Equal(t, "Ghost Device", report.Unresolved[0].ConfiguredName)
	assert.Equal(t, catalog.Output, report.Unresolved[0].Kind)
	assert.True(t, report.HasProblems())
}

func TestValidateChecksInputNames(t *testing.T) {
	cat := &fakeCatalog{
		outputs: []catalog.Endpoint{{ID: "spk", FriendlyName: "Speakers", Kind: catalog.Output}},
	}
	bindings := []hotkeys.Binding{
		binding("Ctrl+Alt+F1", "Speakers", "Missing Mic"),
	}

	report := Validate(bindings, cat, resolver.Exact, resolver.Options{})

	require.Len(t, report.Unresolved, 1)
	assert.Equal(t, "Missing Mic", report.Unresolved[0].ConfiguredName)
	assert.Equal(t, catalog.Input, report.Unresolved[0].Kind)
}

func TestValidateFuzzyMode(t *testing.T) {
	cat := &fakeCatalog{
		outputs: []catalog.Endpoint{{ID: "spk", FriendlyName: "Speakers (Realtek)", Kind: catalog.Output}},
	}
	bindings := []hotkeys.Binding{
		binding("Ctrl+Alt+F1", "Speakers", ""),
	}

	exact := Validate(bindings, cat, resolver.Exact, resolver.Options{})
	assert.Len(t, exact.Unresolved, 1)

	fuzzy := Validate(bindings, cat, resolver.Fuzzy, resolver.Options{})
	assert.Empty(t, fuzzy.Unresolved)
}

func TestValidateCatalogFailure(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("audio subsystem unavailable")}
	bindings := []hotkeys.Binding{
		binding("Ctrl+Alt+F1", "Speakers", ""),
	}

	// Startup is never blocked on a broken enumeration; the report is
	// simply empty.
	report := Validate(bindings, cat, resolver.Exact, resolver.Options{})
	assert.Empty(t, report.Unresolved)
	assert.False(t, report.HasProblems())
}

func TestReportMessageIsConsolidated(t *testing.T) {
	report := Report{
		Unresolved: []UnresolvedDevice{
			{ConfiguredName: "Ghost Output", Kind: catalog.Output, Combo: mustCombo("Ctrl+Alt+F3")},
			{ConfiguredName: "Ghost Mic", Kind: catalog.Input, Combo: mustCombo("Ctrl+Alt+F4")},
		},
		RegistrationFailures: []error{errors.New("hotkey registration failed: Ctrl+Alt+F5: already claimed")},
		AvailableOutput:      []string{"Speakers", "Headphones"},
		AvailableInput:       []string{"Desk Mic"},
	}

	msg := report.Message()

	// Every missing name verbatim, in one message.
	assert.Contains(t, msg, "Ghost Output (hotkey: Ctrl+Alt+F3)")
	assert.Contains(t, msg, "Ghost Mic (hotkey: Ctrl+Alt+F4)")
	assert.Contains(t, msg, "Ctrl+Alt+F5")
	assert.Contains(t, msg, "Speakers, Headphones")
	assert.Contains(t, msg, "Desk Mic")
}

func TestReportRegistrationFailuresAlone(t *testing.T) {
	report := Report{
		RegistrationFailures: []error{errors.New("already claimed")},
	}
	assert.True(t, report.HasProblems())
	assert.Contains(t, report.Message(), "already claimed")
}

func mustCombo(spec string) hotkeys.Combo {
	combo, err := hotkeys.ParseCombo(spec)
	if err != nil {
		panic(err)
	}
	return combo
}
