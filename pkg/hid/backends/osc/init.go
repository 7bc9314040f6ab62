package osc

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/hid/registry"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

const (
	// The lowest priority of the injection backends: forwarding events
	// over the network is the last resort, and it requires an explicitly
	// configured address.
	Priority = 10
)

func init() {
	registry.RegisterPointerFactory(Priority, PointerOSCFactory{})
	registry.RegisterKeyboardFactory(Priority, KeyboardOSCFactory{})
}

type PointerOSCFactory struct{}

func (PointerOSCFactory) NewPointer(ctx context.Context, cfg types.PointerConfig) (types.Pointer, error) {
	return NewPointer(ctx, cfg)
}

type KeyboardOSCFactory struct{}

func (KeyboardOSCFactory) NewKeyboard(ctx context.Context, cfg types.KeyboardConfig) (types.Keyboard, error) {
	return NewKeyboard(ctx, cfg)
}
