package pulseaudio

import (
	"context"
	"fmt"
	"time"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"github.com/pamiq/pamiq-io/pkg/audio/queue"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Output struct {
	guard        device.Guard
	pulseClient  *pulse.Client
	stream       *pulse.PlaybackStream
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

	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("unable to open a client to Pulse: %w", err)
	}

	sink, err := sinkByID(c, cfg.DeviceID)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%v: %w", err, device.ErrDeviceUnavailable)
	}

	chanMap, err := channelMap(cfg.Channels)
	if err != nil {
		c.Close()
		return nil, err
	}

	samples := queue.New(cfg.QueueBlocks * cfg.BlockSize * int(cfg.Channels))
	output := &Output{
		pulseClient:  c,
		samples:      samples,
		sampleRate:   cfg.SampleRate,
		channels:     cfg.Channels,
		writeTimeout: cfg.WriteTimeout,
	}

	stream, err := c.NewPlayback(
		pulseSampleReader{ByteReader: &queue.ByteReader{Queue: samples}},
		pulse.PlaybackSink(sink),
		pulse.PlaybackSampleRate(int(cfg.SampleRate)),
		pulse.PlaybackChannels(chanMap),
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("unable to initialize a playback stream: %w", err)
	}
	output.stream = stream

	stream.Start()
	if stream.Error() != nil {
		err := stream.Error()
		stream.Close()
		c.Close()
		return nil, fmt.Errorf("an error occurred while starting the playback stream: %w", err)
	}

	return output, nil
}

func (o *Output) WriteFrames(
	ctx context.Context,
	samples []float32,
) error {
	return o.guard.Do(func() error {
		if len(samples)%int(o.channels) != 0 {
			return fmt.Errorf("got %d samples, which is not a multiple of %d channels", len(samples), o.channels)
		}
		if streamErr := o.stream.Error(); streamErr != nil {
			return fmt.Errorf("%v: %w", streamErr, device.ErrDeviceUnavailable)
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
	return o.guard.Close(func() (_err error) {
		defer func() {
			r := recover()
			if r != nil {
				_err = fmt.Errorf("got a panic: %v", r)
			}
		}()
		o.samples.Close()
		o.stream.Stop()
		o.stream.Close()
		o.pulseClient.Close()
		return
	})
}

// pulseSampleReader feeds the playback stream from the sample queue,
// yielding silence while the queue is empty.
type pulseSampleReader struct {
	*queue.ByteReader
}

var _ pulse.Reader = pulseSampleReader{}

func (pulseSampleReader) Format() byte {
	return proto.FormatFloat32LE
}

func sinkByID(c *pulse.Client, id string) (*pulse.Sink, error) {
	if id == "" {
		return c.DefaultSink()
	}
	return c.SinkByID(id)
}
