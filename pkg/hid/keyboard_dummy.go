package hid

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

// KeyEvent is one recorded injection call of a KeyboardDummy.
type KeyEvent struct {
	Key     types.Key
	Pressed bool
}

// KeyboardDummy records the key events it receives. See PointerDummy.
type KeyboardDummy struct {
	guard device.Guard

	Deny         bool
	Events       []KeyEvent
	BackendCalls int
}

var _ types.Keyboard = (*KeyboardDummy)(nil)

func NewKeyboardDummy() *KeyboardDummy {
	return &KeyboardDummy{}
}

func (k *KeyboardDummy) inject(ev KeyEvent) error {
	return k.guard.Do(func() error {
		k.BackendCalls++
		if k.Deny {
			return fmt.Errorf("the synthetic event was rejected: %w", device.ErrInjectionFailed)
		}
		k.Events = append(k.Events, ev)
		return nil
	})
}

func (k *KeyboardDummy) Press(ctx context.Context, key types.Key) error {
	return k.inject(KeyEvent{Key: key, Pressed: true})
}

func (k *KeyboardDummy) Release(ctx context.Context, key types.Key) error {
	return k.inject(KeyEvent{Key: key, Pressed: false})
}

func (k *KeyboardDummy) Tap(ctx context.Context, key types.Key) error {
	if err := k.Press(ctx, key); err != nil {
		return err
	}
	return k.Release(ctx, key)
}

func (k *KeyboardDummy) Close() error {
	return k.guard.Close(func() error { return nil })
}
