package malgo

import (
	"context"
	"fmt"
	"time"

	"github.com/gen2brain/malgo"

	"github.com/pamiq/pamiq-io/pkg/audio/queue"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Output struct {
	guard        device.Guard
	malgoCtx     *malgo.AllocatedContext
	dev          *malgo.Device
	samples      *queue.Queue
	sampleRate   types.SampleRate
	channels     types.Channel
	writeTimeout time.Duration
}

var _ types.Output = (*Output)(nil)

func NewOutput(
	ctx context.Context,
	cfg types.OutputConfig,
) (*Output, error) {
	cfg = cfg.WithDefaults()

	malgoCtx, err := newContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize a miniaudio context: %w", err)
	}

	devID, err := deviceIDPointer(malgoCtx, malgo.Playback, cfg.DeviceID)
	if err != nil {
		freeContext(malgoCtx)
		return nil, fmt.Errorf("%v: %w", err, device.ErrDeviceUnavailable)
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.Playback.Format = malgo.FormatF32
	devCfg.Playback.Channels = uint32(cfg.Channels)
	devCfg.Playback.DeviceID = devID
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.BlockSize)

	samples := queue.New(cfg.QueueBlocks * cfg.BlockSize * int(cfg.Channels))
	reader := &queue.ByteReader{Queue: samples}

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutputSamples, pInputSamples []byte, frameCount uint32) {
			// ByteReader yields silence while the queue is empty, so the
			// device loop never starves.
			_, _ = reader.Read(pOutputSamples)
		},
	}

	dev, err := malgo.InitDevice(malgoCtx.Context, devCfg, callbacks)
	if err != nil {
		freeContext(malgoCtx)
		return nil, fmt.Errorf("unable to initialize a playback device: %w", err)
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		freeContext(malgoCtx)
		return nil, fmt.Errorf("unable to start the playback device: %w", err)
	}

	return &Output{
		malgoCtx:     malgoCtx,
		dev:          dev,
		samples:      samples,
		sampleRate:   cfg.SampleRate,
		channels:     cfg.Channels,
		writeTimeout: cfg.WriteTimeout,
	}, nil
}

func (o *Output) WriteFrames(
	ctx context.Context,
	samples []float32,
) error {
	return o.guard.Do(func() error {
		if len(samples)%int(o.channels) != 0 {
			return fmt.Errorf("got %d samples, which is not a multiple of %d channels", len(samples), o.channels)
		}
		return o.samples.Write(ctx, samples, o.writeTimeout)
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
		o.samples.Close()
		o.dev.Uninit()
		freeContext(o.malgoCtx)
		return nil
	})
}
