package oto

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/pamiq/pamiq-io/pkg/audio/queue"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

// oto allows initializing its context only once per process, so the
// backend supports a single fixed format and rejects everything else.
const (
	SampleRate types.SampleRate = 44100
	Channels   types.Channel    = 2
)

var (
	otoCtx     *oto.Context
	otoCtxErr  error
	otoCtxOnce sync.Once
)

func getOtoContext() (*oto.Context, error) {
	otoCtxOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(SampleRate),
			ChannelCount: int(Channels),
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			otoCtxErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoCtxErr
}

type Output struct {
	guard        device.Guard
	player       *oto.Player
	samples      *queue.Queue
	writeTimeout time.Duration
}

var _ types.Output = (*Output)(nil)

func NewOutput(
	ctx context.Context,
	cfg types.OutputConfig,
) (*Output, error) {
	cfg = cfg.WithDefaults()

	if cfg.SampleRate != SampleRate || cfg.Channels != Channels {
		return nil, fmt.Errorf("the oto backend supports only %d Hz with %d channels, but got %d Hz with %d channels",
			SampleRate, Channels, cfg.SampleRate, cfg.Channels)
	}
	if cfg.DeviceID != "" {
		return nil, fmt.Errorf("the oto backend cannot select a specific device: %w", device.ErrDeviceUnavailable)
	}

	otoContext, err := getOtoContext()
	if err != nil {
		return nil, fmt.Errorf("unable to get an oto context: %w", err)
	}

	samples := queue.New(cfg.QueueBlocks * cfg.BlockSize * int(cfg.Channels))
	player := otoContext.NewPlayer(&queue.ByteReader{Queue: samples})
	player.Play()

	return &Output{
		player:       player,
		samples:      samples,
		writeTimeout: cfg.WriteTimeout,
	}, nil
}

func (o *Output) WriteFrames(
	ctx context.Context,
	samples []float32,
) error {
	return o.guard.Do(func() error {
		if len(samples)%int(Channels) != 0 {
			return fmt.Errorf("got %d samples, which is not a multiple of %d channels", len(samples), Channels)
		}
		return o.samples.Write(ctx, samples, o.writeTimeout)
	})
}

func (o *Output) SampleRate() types.SampleRate {
	return SampleRate
}

func (o *Output) Channels() types.Channel {
	return Channels
}

func (o *Output) Close() error {
	return o.guard.Close(func() error {
		o.samples.Close()
		return o.player.Close()
	})
}
