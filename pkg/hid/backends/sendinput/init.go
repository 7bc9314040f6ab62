//go:build windows
// +build windows

package sendinput

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/hid/registry"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

const (
	Priority = 100
)

func init() {
	registry.RegisterPointerFactory(Priority, PointerSendInputFactory{})
	registry.RegisterKeyboardFactory(Priority, KeyboardSendInputFactory{})
}

type PointerSendInputFactory struct{}

func (PointerSendInputFactory) NewPointer(ctx context.Context, cfg types.PointerConfig) (types.Pointer, error) {
	return NewPointer(ctx, cfg)
}

type KeyboardSendInputFactory struct{}

func (KeyboardSendInputFactory) NewKeyboard(ctx context.Context, cfg types.KeyboardConfig) (types.Keyboard, error) {
	return NewKeyboard(ctx, cfg)
}
