//go:build linux
// +build linux

package uinput

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/hid/registry"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

const (
	Priority = 100
)

func init() {
	registry.RegisterPointerFactory(Priority, PointerUInputFactory{})
	registry.RegisterKeyboardFactory(Priority, KeyboardUInputFactory{})
}

type PointerUInputFactory struct{}

func (PointerUInputFactory) NewPointer(ctx context.Context, cfg types.PointerConfig) (types.Pointer, error) {
	return NewPointer(ctx, cfg)
}

type KeyboardUInputFactory struct{}

func (KeyboardUInputFactory) NewKeyboard(ctx context.Context, cfg types.KeyboardConfig) (types.Keyboard, error) {
	return NewKeyboard(ctx, cfg)
}
