//go:build linux
// +build linux

package uinput

import (
	"context"
	"fmt"

	"github.com/bendahl/uinput"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type Keyboard struct {
	guard    device.Guard
	keyboard uinput.Keyboard
}

var _ types.Keyboard = (*Keyboard)(nil)

func NewKeyboard(
	_ context.Context,
	cfg types.KeyboardConfig,
) (*Keyboard, error) {
	path := cfg.DeviceID
	if path == "" {
		path = defaultUInputPath
	}

	keyboard, err := uinput.CreateKeyboard(path, []byte("pamiq-io virtual keyboard"))
	if err != nil {
		return nil, fmt.Errorf("unable to create a virtual keyboard at '%s': %v: %w", path, err, device.ErrDeviceUnavailable)
	}
	return &Keyboard{
		keyboard: keyboard,
	}, nil
}

// The key codes are the Linux input event codes already, so no
// translation table is needed here.

func (k *Keyboard) Press(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return injectErr(k.keyboard.KeyDown(int(key)))
	})
}

func (k *Keyboard) Release(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return injectErr(k.keyboard.KeyUp(int(key)))
	})
}

func (k *Keyboard) Tap(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return injectErr(k.keyboard.KeyPress(int(key)))
	})
}

func (k *Keyboard) Close() error {
	return k.guard.Close(func() error {
		return k.keyboard.Close()
	})
}
