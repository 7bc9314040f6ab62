package hid

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

// PointerEvent is one recorded injection call of a PointerDummy.
type PointerEvent struct {
	Kind    string
	DX, DY  int
	Button  types.Button
	Pressed bool
}

// PointerDummy records the events it receives. Setting Deny makes
// every call fail the way an OS permission denial does, without
// closing the handle.
type PointerDummy struct {
	guard device.Guard

	Deny         bool
	Events       []PointerEvent
	BackendCalls int
}

var _ types.Pointer = (*PointerDummy)(nil)

func NewPointerDummy() *PointerDummy {
	return &PointerDummy{}
}

func (p *PointerDummy) inject(ev PointerEvent) error {
	return p.guard.Do(func() error {
		p.BackendCalls++
		if p.Deny {
			return fmt.Errorf("the synthetic event was rejected: %w", device.ErrInjectionFailed)
		}
		p.Events = append(p.Events, ev)
		return nil
	})
}

func (p *PointerDummy) Move(ctx context.Context, dx, dy int) error {
	return p.inject(PointerEvent{Kind: "move", DX: dx, DY: dy})
}

func (p *PointerDummy) Button(ctx context.Context, button types.Button, pressed bool) error {
	return p.inject(PointerEvent{Kind: "button", Button: button, Pressed: pressed})
}

func (p *PointerDummy) Click(ctx context.Context, button types.Button) error {
	if err := p.Button(ctx, button, true); err != nil {
		return err
	}
	return p.Button(ctx, button, false)
}

func (p *PointerDummy) Scroll(ctx context.Context, dx, dy int) error {
	return p.inject(PointerEvent{Kind: "scroll", DX: dx, DY: dy})
}

func (p *PointerDummy) Close() error {
	return p.guard.Close(func() error { return nil })
}
