//go:build windows
// +build windows

package sendinput

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type Pointer struct {
	guard device.Guard
}

var _ types.Pointer = (*Pointer)(nil)

func NewPointer(
	_ context.Context,
	cfg types.PointerConfig,
) (*Pointer, error) {
	if cfg.DeviceID != "" {
		return nil, fmt.Errorf("SendInput targets the system pointer only, a device ID is not supported")
	}
	return &Pointer{}, nil
}

func (p *Pointer) Move(ctx context.Context, dx, dy int) error {
	return p.guard.Do(func() error {
		return sendMouseInput(mouseInput{
			Dx:      int32(dx),
			Dy:      int32(dy),
			DwFlags: mouseEventFMove,
		})
	})
}

func (p *Pointer) Button(ctx context.Context, button types.Button, pressed bool) error {
	return p.guard.Do(func() error {
		var flags uint32
		switch button {
		case types.ButtonLeft:
			flags = mouseEventFLeftDown
			if !pressed {
				flags = mouseEventFLeftUp
			}
		case types.ButtonMiddle:
			flags = mouseEventFMiddleDown
			if !pressed {
				flags = mouseEventFMiddleUp
			}
		case types.ButtonRight:
			flags = mouseEventFRightDown
			if !pressed {
				flags = mouseEventFRightUp
			}
		default:
			return fmt.Errorf("unknown button %v: %w", button, device.ErrInjectionFailed)
		}
		return sendMouseInput(mouseInput{DwFlags: flags})
	})
}

func (p *Pointer) Click(ctx context.Context, button types.Button) error {
	if err := p.Button(ctx, button, true); err != nil {
		return err
	}
	return p.Button(ctx, button, false)
}

func (p *Pointer) Scroll(ctx context.Context, dx, dy int) error {
	return p.guard.Do(func() error {
		if dx != 0 {
			err := sendMouseInput(mouseInput{
				MouseData: uint32(int32(dx) * wheelDelta),
				DwFlags:   mouseEventFHWheel,
			})
			if err != nil {
				return err
			}
		}
		if dy != 0 {
			// a positive wheel delta rotates away from the user
			err := sendMouseInput(mouseInput{
				MouseData: uint32(int32(-dy) * wheelDelta),
				DwFlags:   mouseEventFWheel,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Pointer) Close() error {
	return p.guard.Close(func() error { return nil })
}
