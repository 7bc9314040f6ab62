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

type Capture struct {
	guard      device.Guard
	stream     *portaudio.Stream
	buf        []float32
	carry      []float32
	sampleRate types.SampleRate
	channels   types.Channel
}

var _ types.Capture = (*Capture)(nil)

func NewCapture(
	ctx context.Context,
	cfg types.CaptureConfig,
) (*Capture, error) {
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
			int(cfg.Channels), 0, float64(cfg.SampleRate), cfg.BlockSize, buf,
		)
	} else {
		info, lookupErr := deviceByID(cfg.DeviceID)
		if lookupErr != nil {
			return nil, fmt.Errorf("%v: %w", lookupErr, device.ErrDeviceUnavailable)
		}
		params := portaudio.LowLatencyParameters(info, nil)
		params.Input.Channels = int(cfg.Channels)
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

	logger.Debugf(ctx, "opened a portaudio capture: %d Hz, %d ch, block %d",
		cfg.SampleRate, cfg.Channels, cfg.BlockSize)
	return &Capture{
		stream:     stream,
		buf:        buf,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
	}, nil
}

func (c *Capture) ReadFrames(
	ctx context.Context,
	numFrames int,
) ([]float32, error) {
	var result []float32
	err := c.guard.Do(func() error {
		want := numFrames * int(c.channels)
		out := make([]float32, 0, want)
		if len(c.carry) > 0 {
			n := len(c.carry)
			if n > want {
				n = want
			}
			out = append(out, c.carry[:n]...)
			c.carry = c.carry[n:]
		}
		for len(out) < want {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := c.stream.Read()
			if errors.Is(err, portaudio.InputOverflowed) {
				// some frames were lost between reads; the block itself is valid
				logger.Debugf(ctx, "input overflowed")
				err = nil
			}
			if err != nil {
				if c.guard.Closed() {
					return device.ErrClosed
				}
				return fmt.Errorf("unable to read a block: %v: %w", err, device.ErrDeviceUnavailable)
			}
			out = append(out, c.buf...)
		}
		c.carry = append(c.carry, out[want:]...)
		result = out[:want]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Capture) SampleRate() types.SampleRate {
	return c.sampleRate
}

func (c *Capture) Channels() types.Channel {
	return c.channels
}

func (c *Capture) Close() error {
	return c.guard.Close(func() error {
		if err := c.stream.Abort(); err != nil {
			return c.stream.Close()
		}
		return c.stream.Close()
	})
}
