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

type fakeKeyboardFactory struct {
	impl *KeyboardDummy
}

func (f fakeKeyboardFactory) NewKeyboard(ctx context.Context, cfg types.KeyboardConfig) (types.Keyboard, error) {
	return f.impl, nil
}

func TestNewKeyboardAuto(t *testing.T) {
	ctx := context.Background()

	t.Run("NoBackendAvailable", func(t *testing.T) {
		_, err := NewKeyboardAuto(ctx, KeyboardConfig{})
		require.ErrorIs(t, err, device.ErrNoBackendAvailable)
	})

	t.Run("SelectsRegisteredBackend", func(t *testing.T) {
		impl := NewKeyboardDummy()
		registry.RegisterKeyboardFactory(50, fakeKeyboardFactory{impl: impl})

		keyboard, err := NewKeyboardAuto(ctx, KeyboardConfig{})
		require.NoError(t, err)
		require.NoError(t, keyboard.Tap(ctx, types.KeyW))
		require.Equal(t, []KeyEvent{
			{Key: types.KeyW, Pressed: true},
			{Key: types.KeyW, Pressed: false},
		}, impl.Events)
	})
}

func TestKeyboardInjectionFailedKeepsHandleUsable(t *testing.T) {
	ctx := context.Background()
	impl := NewKeyboardDummy()
	keyboard := NewKeyboard(impl)
	defer keyboard.Close()

	impl.Deny = true
	require.ErrorIs(t, keyboard.Press(ctx, types.KeyA), device.ErrInjectionFailed)

	impl.Deny = false
	require.NoError(t, keyboard.Press(ctx, types.KeyA))
	require.NoError(t, keyboard.Release(ctx, types.KeyA))
	assert.Equal(t, []KeyEvent{
		{Key: types.KeyA, Pressed: true},
		{Key: types.KeyA, Pressed: false},
	}, impl.Events)
}

func TestKeyboardUseAfterClose(t *testing.T) {
	ctx := context.Background()
	impl := NewKeyboardDummy()
	keyboard := NewKeyboard(impl)

	require.NoError(t, keyboard.Close())
	require.NoError(t, keyboard.Close(), "close is idempotent")

	require.ErrorIs(t, keyboard.Tap(ctx, types.KeySpace), device.ErrClosed)
	assert.Zero(t, impl.BackendCalls)
}
