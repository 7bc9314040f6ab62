package hid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/registry"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type fakePointerFactory struct {
	impl *PointerDummy
}

func (f fakePointerFactory) NewPointer(ctx context.Context, cfg types.PointerConfig) (types.Pointer, error) {
	return f.impl, nil
}

func TestNewPointerAuto(t *testing.T) {
	ctx := context.Background()

	t.Run("NoBackendAvailable", func(t *testing.T) {
		_, err := NewPointerAuto(ctx, PointerConfig{})
		require.ErrorIs(t, err, device.ErrNoBackendAvailable)
	})

	t.Run("SelectsRegisteredBackend", func(t *testing.T) {
		impl := NewPointerDummy()
		registry.RegisterPointerFactory(50, fakePointerFactory{impl: impl})

		pointer, err := NewPointerAuto(ctx, PointerConfig{})
		require.NoError(t, err)
		require.NoError(t, pointer.Move(ctx, 10, -5))
		require.Equal(t, []PointerEvent{{Kind: "move", DX: 10, DY: -5}}, impl.Events)
	})
}

func TestPointerInjectionFailedKeepsHandleUsable(t *testing.T) {
	ctx := context.Background()
	impl := NewPointerDummy()
	pointer := NewPointer(impl)
	defer pointer.Close()

	impl.Deny = true
	err := pointer.Move(ctx, 10, -5)
	require.ErrorIs(t, err, device.ErrInjectionFailed)

	impl.Deny = false
	require.NoError(t, pointer.Move(ctx, 1, 2))
	require.NoError(t, pointer.Click(ctx, types.ButtonLeft))
	assert.Equal(t, []PointerEvent{
		{Kind: "move", DX: 1, DY: 2},
		{Kind: "button", Button: types.ButtonLeft, Pressed: true},
		{Kind: "button", Button: types.ButtonLeft, Pressed: false},
	}, impl.Events)
}

func TestPointerUseAfterClose(t *testing.T) {
	ctx := context.Background()
	impl := NewPointerDummy()
	pointer := NewPointer(impl)

	require.NoError(t, pointer.Close())
	require.NoError(t, pointer.Close(), "close is idempotent")

	require.ErrorIs(t, pointer.Move(ctx, 1, 1), device.ErrClosed)
	require.ErrorIs(t, pointer.Scroll(ctx, 0, 1), device.ErrClosed)
	assert.Zero(t, impl.BackendCalls)
}
