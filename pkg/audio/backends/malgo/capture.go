package malgo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gen2brain/malgo"

	"github.com/pamiq/pamiq-io/pkg/audio/queue"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Capture struct {
	guard      device.Guard
	malgoCtx   *malgo.AllocatedContext
	dev        *malgo.Device
	samples    *queue.Queue
	sampleRate types.SampleRate
	channels   types.Channel
}

var _ types.Capture = (*Capture)(nil)

func NewCapture(
	ctx context.Context,
	cfg types.CaptureConfig,
) (*Capture, error) {
	cfg = cfg.WithDefaults()

	malgoCtx, err := newContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize a miniaudio context: %w", err)
	}

	devID, err := deviceIDPointer(malgoCtx, malgo.Capture, cfg.DeviceID)
	if err != nil {
		freeContext(malgoCtx)
		return nil, fmt.Errorf("%v: %w", err, device.ErrDeviceUnavailable)
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = malgo.FormatF32
	devCfg.Capture.Channels = uint32(cfg.Channels)
	devCfg.Capture.DeviceID = devID
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.BlockSize)

	// a second of backlog before the callback starts dropping the oldest
	samples := queue.New(int(cfg.SampleRate) * int(cfg.Channels))

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutputSamples, pInputSamples []byte, frameCount uint32) {
			queue.PushBytes(samples, pInputSamples)
		},
		// unblocks in-flight reads when the device dies
		Stop: func() {
			samples.EndWrites()
		},
	}

	dev, err := malgo.InitDevice(malgoCtx.Context, devCfg, callbacks)
	if err != nil {
		freeContext(malgoCtx)
		return nil, fmt.Errorf("unable to initialize a capture device: %w", err)
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		freeContext(malgoCtx)
		return nil, fmt.Errorf("unable to start the capture device: %w", err)
	}

	return &Capture{
		malgoCtx:   malgoCtx,
		dev:        dev,
		samples:    samples,
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
		buf := make([]float32, numFrames*int(c.channels))
		filled, err := c.samples.ReadFull(ctx, buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("the stream ended after %d of %d requested frames: %w",
					filled/int(c.channels), numFrames, device.ErrInsufficientData)
			}
			return err
		}
		result = buf
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
		c.samples.Close()
		c.dev.Uninit()
		freeContext(c.malgoCtx)
		return nil
	})
}
