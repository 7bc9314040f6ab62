package types

import (
	"context"
	"io"
)

// Capture is the audio input contract. Samples are interleaved float32
// in [-1, 1], regardless of the backend's native representation.
//
// A Capture is not safe for concurrent use; serialize access or open
// one handle per user.
type Capture interface {
	io.Closer

	// ReadFrames blocks until exactly numFrames frames are available
	// and returns numFrames*Channels() samples. If the stream ends
	// first, it fails with device.ErrInsufficientData; if the device is
	// gone, with device.ErrDeviceUnavailable; after Close, with
	// device.ErrClosed.
	ReadFrames(ctx context.Context, numFrames int) ([]float32, error)

	SampleRate() SampleRate
	Channels() Channel
}
