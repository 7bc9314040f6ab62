package audio

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

// CaptureDummy serves a fixed set of buffered samples and then reports
// end of stream. It backs the package tests and is handy as a stand-in
// where no real device is wanted.
type CaptureDummy struct {
	guard      device.Guard
	sampleRate SampleRate
	channels   Channel
	buffered   []float32

	// BackendCalls counts the operations that actually reached the
	// fake backend, so tests can assert closed handles never do.
	BackendCalls int
}

var _ types.Capture = (*CaptureDummy)(nil)

func NewCaptureDummy(sampleRate SampleRate, channels Channel, buffered []float32) *CaptureDummy {
	return &CaptureDummy{
		sampleRate: sampleRate,
		channels:   channels,
		buffered:   buffered,
	}
}

func (c *CaptureDummy) ReadFrames(
	ctx context.Context,
	numFrames int,
) ([]float32, error) {
	var samples []float32
	err := c.guard.Do(func() error {
		c.BackendCalls++
		want := numFrames * int(c.channels)
		if len(c.buffered) < want {
			got := len(c.buffered) / int(c.channels)
			c.buffered = nil
			return fmt.Errorf("the stream ended after %d of %d requested frames: %w",
				got, numFrames, device.ErrInsufficientData)
		}
		samples = make([]float32, want)
		copy(samples, c.buffered[:want])
		c.buffered = c.buffered[want:]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (c *CaptureDummy) SampleRate() SampleRate {
	return c.sampleRate
}

func (c *CaptureDummy) Channels() Channel {
	return c.channels
}

func (c *CaptureDummy) Close() error {
	return c.guard.Close(func() error { return nil })
}
