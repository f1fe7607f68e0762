package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundswitch/internal/catalog"
)

type stubCatalog struct {
	setErr error
	set    []catalog.Endpoint
}

func (s *stubCatalog) Endpoints(kind catalog.Kind) ([]catalog.Endpoint, error) { return nil, nil }

func (s *stubCatalog) SetDefault(ep catalog.Endpoint) error {
	s.set = append(s.set, ep)
	return s.setErr
}

func TestExecutorSwitch(t *testing.T) {
	cat := &stubCatalog{}
	ex := NewExecutor(cat)

	ep := catalog.Endpoint{ID: "spk", FriendlyName: "Speakers", Kind: catalog.Output}
	require.NoError(t, ex.Switch(ep))
	require.Len(t, cat.set, 1)
	assert.Equal(t, ep, cat.set[0])
}

func TestExecutorStaleEndpoint(t *testing.T) {
	cat := &stubCatalog{setErr: catalog.ErrNotFound}
	ex := NewExecutor(cat)

	err := ex.Switch(catalog.Endpoint{ID: "gone", FriendlyName: "Unplugged", Kind: catalog.Output})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Contains(t, err.Error(), "Unplugged")
}

func TestExecutorOSFailure(t *testing.T) {
	cat := &stubCatalog{setErr: errors.New("access denied")}
	ex := NewExecutor(cat)

	err := ex.Switch(catalog.Endpoint{ID: "spk", FriendlyName: "Speakers", Kind: catalog.Input})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOSCall)
	assert.Contains(t, err.Error(), "input")
}
