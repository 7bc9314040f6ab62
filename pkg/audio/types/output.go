package types

import (
	"context"
	"io"
)

// Output is the audio output contract. Samples are interleaved float32
// in [-1, 1].
//
// An Output is not safe for concurrent use.
type Output interface {
	io.Closer

	// WriteFrames queues the samples for playback in call order. len
	// must be a multiple of Channels(). If the backend cannot accept the
	// block without dropping data, it fails with
	// device.ErrBufferOverrun; after Close, with device.ErrClosed.
	WriteFrames(ctx context.Context, samples []float32) error

	SampleRate() SampleRate
	Channels() Channel
}
