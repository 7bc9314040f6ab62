package types

import (
	"context"
	"io"
)

// Keyboard injects synthetic key events. Same acknowledgement and
// error semantics as Pointer.
type Keyboard interface {
	io.Closer

	Press(ctx context.Context, key Key) error
	Release(ctx context.Context, key Key) error
	Tap(ctx context.Context, key Key) error
}
