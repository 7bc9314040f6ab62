package audio

import (
	"context"
	"fmt"

	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

// OutputDummy queues written samples into an in-memory buffer with the
// same bounded-queue semantics real outputs have.
type OutputDummy struct {
	guard      device.Guard
	sampleRate SampleRate
	channels   Channel
	capacity   int

	// Written holds every sample accepted so far, in call order.
	Written []float32

	BackendCalls int
}

var _ types.Output = (*OutputDummy)(nil)

func NewOutputDummy(cfg OutputConfig) *OutputDummy {
	cfg = cfg.WithDefaults()
	return &OutputDummy{
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		capacity:   cfg.QueueBlocks * cfg.BlockSize * int(cfg.Channels),
	}
}

func (o *OutputDummy) WriteFrames(
	ctx context.Context,
	samples []float32,
) error {
	return o.guard.Do(func() error {
		o.BackendCalls++
		if len(samples)%int(o.channels) != 0 {
			return fmt.Errorf("got %d samples, which is not a multiple of %d channels", len(samples), o.channels)
		}
		if len(o.Written)+len(samples) > o.capacity {
			return fmt.Errorf("the queue is full (%d of %d samples): %w",
				len(o.Written), o.capacity, device.ErrBufferOverrun)
		}
		o.Written = append(o.Written, samples...)
		return nil
	})
}

func (o *OutputDummy) SampleRate() SampleRate {
	return o.sampleRate
}

func (o *OutputDummy) Channels() Channel {
	return o.channels
}

func (o *OutputDummy) Close() error {
	return o.guard.Close(func() error { return nil })
}
