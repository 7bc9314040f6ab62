package types

import (
	"context"
	"io"
)

// Capture is the video input contract.
//
// A Capture is not safe for concurrent use.
type Capture interface {
	io.Closer

	// ReadFrame blocks until the next frame is available. A
	// disconnected device fails with device.ErrDeviceUnavailable; after
	// Close it fails with device.ErrClosed.
	ReadFrame(ctx context.Context) (Frame, error)

	Width() int
	Height() int
	Channels() int
	FPS() float64
}
