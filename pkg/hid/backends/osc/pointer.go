package osc

import (
	"context"

	"github.com/hypebeast/go-osc/osc"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type Pointer struct {
	guard  device.Guard
	client *osc.Client
}

var _ types.Pointer = (*Pointer)(nil)

func NewPointer(
	_ context.Context,
	cfg types.PointerConfig,
) (*Pointer, error) {
	client, err := newClient(cfg.DeviceID)
	if err != nil {
		return nil, err
	}
	return &Pointer{
		client: client,
	}, nil
}

func (p *Pointer) Move(ctx context.Context, dx, dy int) error {
	return p.guard.Do(func() error {
		return sendMessage(p.client, "/pamiq-io/pointer/move", int32(dx), int32(dy))
	})
}

func (p *Pointer) Button(ctx context.Context, button types.Button, pressed bool) error {
	return p.guard.Do(func() error {
		return sendMessage(p.client, "/pamiq-io/pointer/button", int32(button), pressed)
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
		return sendMessage(p.client, "/pamiq-io/pointer/scroll", int32(dx), int32(dy))
	})
}

func (p *Pointer) Close() error {
	return p.guard.Close(func() error { return nil })
}
