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

const defaultUInputPath = "/dev/uinput"

type Pointer struct {
	guard device.Guard
	mouse uinput.Mouse
}

var _ types.Pointer = (*Pointer)(nil)

func NewPointer(
	_ context.Context,
	cfg types.PointerConfig,
) (*Pointer, error) {
	path := cfg.DeviceID
	if path == "" {
		path = defaultUInputPath
	}

	mouse, err := uinput.CreateMouse(path, []byte("pamiq-io virtual mouse"))
	if err != nil {
		return nil, fmt.Errorf("unable to create a virtual mouse at '%s': %v: %w", path, err, device.ErrDeviceUnavailable)
	}
	return &Pointer{
		mouse: mouse,
	}, nil
}

func (p *Pointer) Move(ctx context.Context, dx, dy int) error {
	return p.guard.Do(func() error {
		return injectErr(p.mouse.Move(int32(dx), int32(dy)))
	})
}

func (p *Pointer) Button(ctx context.Context, button types.Button, pressed bool) error {
	return p.guard.Do(func() error {
		switch button {
		case types.ButtonLeft:
			if pressed {
				return injectErr(p.mouse.LeftPress())
			}
			return injectErr(p.mouse.LeftRelease())
		case types.ButtonMiddle:
			if pressed {
				return injectErr(p.mouse.MiddlePress())
			}
			return injectErr(p.mouse.MiddleRelease())
		case types.ButtonRight:
			if pressed {
				return injectErr(p.mouse.RightPress())
			}
			return injectErr(p.mouse.RightRelease())
		}
		return fmt.Errorf("unknown button %v: %w", button, device.ErrInjectionFailed)
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
			if err := injectErr(p.mouse.Wheel(true, int32(dx))); err != nil {
				return err
			}
		}
		if dy != 0 {
			// negative delta scrolls down in the kernel convention
			if err := injectErr(p.mouse.Wheel(false, int32(-dy))); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Pointer) Close() error {
	return p.guard.Close(func() error {
		return p.mouse.Close()
	})
}

func injectErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%v: %w", err, device.ErrInjectionFailed)
}
