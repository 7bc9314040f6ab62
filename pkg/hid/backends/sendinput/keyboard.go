//go:build windows
// +build windows

package sendinput

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type Keyboard struct {
	guard device.Guard
}

var _ types.Keyboard = (*Keyboard)(nil)

func NewKeyboard(
	_ context.Context,
	cfg types.KeyboardConfig,
) (*Keyboard, error) {
	if cfg.DeviceID != "" {
		return nil, fmt.Errorf("SendInput targets the system keyboard only, a device ID is not supported")
	}
	return &Keyboard{}, nil
}

func (k *Keyboard) key(key types.Key, pressed bool) error {
	scan, extended, err := scanCode(key)
	if err != nil {
		return err
	}
	flags := uint32(keyEventFScanCode)
	if extended {
		flags |= keyEventFExtendedKey
	}
	if !pressed {
		flags |= keyEventFKeyUp
	}
	return sendKeybdInput(keybdInput{
		WScan:   scan,
		DwFlags: flags,
	})
}

func (k *Keyboard) Press(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return k.key(key, true)
	})
}

func (k *Keyboard) Release(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return k.key(key, false)
	})
}

func (k *Keyboard) Tap(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		if err := k.key(key, true); err != nil {
			return err
		}
		return k.key(key, false)
	})
}

func (k *Keyboard) Close() error {
	return k.guard.Close(func() error { return nil })
}

// scanCode translates a key code into a Windows set-1 scancode. The
// main keyboard block shares its numbering with the Linux event codes;
// the cursor keys live in the E0-prefixed extended set.
func scanCode(key types.Key) (uint16, bool, error) {
	switch key {
	case types.KeyUp:
		return 0x48, true, nil
	case types.KeyLeft:
		return 0x4B, true, nil
	case types.KeyRight:
		return 0x4D, true, nil
	case types.KeyDown:
		return 0x50, true, nil
	}
	if key > 0 && key < 0x60 {
		return uint16(key), false, nil
	}
	return 0, false, fmt.Errorf("no scancode for the key %d: %w", key, device.ErrInjectionFailed)
}
