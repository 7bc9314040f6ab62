package types

import (
	"context"
	"io"
)

// Pointer injects synthetic pointer events. Deltas are in pixels,
// +x to the right and +y downwards. Every call returns only after the
// backend acknowledged the event; an OS rejection surfaces as
// device.ErrInjectionFailed and leaves the handle usable.
type Pointer interface {
	io.Closer

	Move(ctx context.Context, dx, dy int) error
	Button(ctx context.Context, button Button, pressed bool) error
	Click(ctx context.Context, button Button) error
	Scroll(ctx context.Context, dx, dy int) error
}
