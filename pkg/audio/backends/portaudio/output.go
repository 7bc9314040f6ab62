package portaudio

import (
	"context"
	"errors"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/gordonklaus/portaudio"

	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Output struct {
	guard      device.Guard
	stream     *portaudio.Stream
	buf        []float32
	pending    []float32
	sampleRate types.SampleRate
	channels   types.Channel
}

var _ types.Output = (*Output)(nil)

func NewOutput(
	ctx context.Context,
	cfg types.OutputConfig,
) (*Output, error) {
	cfg = cfg.WithDefaults()

	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	buf := make([]float32, cfg.BlockSize*int(cfg.Channels))

	var (
		stream *portaudio.Stream
		err    error
	)
	if cfg.DeviceID == "" {
		stream, err = portaudio.OpenDefaultStream(
			0, int(cfg.Channels), float64(cfg.SampleRate), cfg.BlockSize, buf,
		)
	} else {
		info, lookupErr := deviceByID(cfg.DeviceID)
		if lookupErr != nil {
			return nil, fmt.Errorf("%v: %w", lookupErr, device.ErrDeviceUnavailable)
		}
		params := portaudio.LowLatencyParameters(nil, info)
		params.Output.Channels = int(cfg.Channels)
		params.SampleRate = float64(cfg.SampleRate)
		params.FramesPerBuffer = cfg.BlockSize
		stream, err = portaudio.OpenStream(params, buf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open a stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("unable to start the stream: %w", err)
	}

	logger.Debugf(ctx, "opened a portaudio output: %d Hz, %d ch, block %d",
		cfg.SampleRate, cfg.Channels, cfg.BlockSize)
	return &Output{
		stream:     stream,
		buf:        buf,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
	}, nil
}

// WriteFrames hands the samples to PortAudio in whole blocks; the
// blocking Write inherits PortAudio's flow control, so nothing is ever
// dropped. A trailing partial block is held back until enough samples
// arrive to fill it.
func (o *Output) WriteFrames(
	ctx context.Context,
	samples []float32,
) error {
	return o.guard.Do(func() error {
		if len(samples)%int(o.channels) != 0 {
			return fmt.Errorf("got %d samples, which is not a multiple of %d channels", len(samples), o.channels)
		}
		o.pending = append(o.pending, samples...)
		for len(o.pending) >= len(o.buf) {
			if err := ctx.Err(); err != nil {
				return err
			}
			copy(o.buf, o.pending[:len(o.buf)])
			o.pending = o.pending[len(o.buf):]
			err := o.stream.Write()
			if errors.Is(err, portaudio.OutputUnderflowed) {
				err = nil
			}
			if err != nil {
				if o.guard.Closed() {
					return device.ErrClosed
				}
				return fmt.Errorf("unable to write a block: %v: %w", err, device.ErrDeviceUnavailable)
			}
		}
		return nil
	})
}

func (o *Output) SampleRate() types.SampleRate {
	return o.sampleRate
}

func (o *Output) Channels() types.Channel {
	return o.channels
}

func (o *Output) Close() error {
	return o.guard.Close(func() error {
		if err := o.stream.Abort(); err != nil {
			return o.stream.Close()
		}
		return o.stream.Close()
	})
}
