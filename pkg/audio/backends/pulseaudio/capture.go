package pulseaudio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"github.com/pamiq/pamiq-io/pkg/audio/queue"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Capture struct {
	guard       device.Guard
	pulseClient *pulse.Client
	stream      *pulse.RecordStream
	samples     *queue.Queue
	sampleRate  types.SampleRate
	channels    types.Channel
}

var _ types.Capture = (*Capture)(nil)

func NewCapture(
	ctx context.Context,
	cfg types.CaptureConfig,
) (*Capture, error) {
	cfg = cfg.WithDefaults()

	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("unable to open a client to Pulse: %w", err)
	}

	source, err := sourceByID(c, cfg.DeviceID)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%v: %w", err, device.ErrDeviceUnavailable)
	}

	chanMap, err := channelMap(cfg.Channels)
	if err != nil {
		c.Close()
		return nil, err
	}

	// a second of backlog before Push starts dropping the oldest samples
	samples := queue.New(int(cfg.SampleRate) * int(cfg.Channels))
	capture := &Capture{
		pulseClient: c,
		samples:     samples,
		sampleRate:  cfg.SampleRate,
		channels:    cfg.Channels,
	}

	stream, err := c.NewRecord(
		pulseSampleWriter{samples: samples},
		pulse.RecordSource(source),
		pulse.RecordSampleRate(int(cfg.SampleRate)),
		pulse.RecordChannels(chanMap),
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("unable to initialize a record stream: %w", err)
	}
	capture.stream = stream

	stream.Start()
	if stream.Error() != nil {
		err := stream.Error()
		stream.Close()
		c.Close()
		return nil, fmt.Errorf("an error occurred while starting the record stream: %w", err)
	}

	return capture, nil
}

func (c *Capture) ReadFrames(
	ctx context.Context,
	numFrames int,
) ([]float32, error) {
	var result []float32
	err := c.guard.Do(func() error {
		want := numFrames * int(c.channels)
		buf := make([]float32, want)
		filled := 0
		for filled < want {
			// a dead stream would never feed the queue, so check before
			// blocking on it
			if streamErr := c.stream.Error(); streamErr != nil {
				return fmt.Errorf("%v: %w", streamErr, device.ErrDeviceUnavailable)
			}
			n, err := c.samples.Read(ctx, buf[filled:])
			filled += n
			if err != nil {
				if errors.Is(err, io.EOF) {
					return fmt.Errorf("the stream ended after %d of %d requested frames: %w",
						filled/int(c.channels), numFrames, device.ErrInsufficientData)
				}
				return err
			}
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

func (c *Capture) Close() (err error) {
	return c.guard.Close(func() (_err error) {
		defer func() {
			r := recover()
			if r != nil {
				_err = fmt.Errorf("got a panic: %v", r)
			}
		}()
		c.samples.Close()
		c.stream.Stop()
		c.stream.Close()
		c.pulseClient.Close()
		return
	})
}

// pulseSampleWriter receives the raw float32le blocks Pulse pushes and
// forwards them into the sample queue.
type pulseSampleWriter struct {
	samples *queue.Queue
}

var _ pulse.Writer = pulseSampleWriter{}

func (w pulseSampleWriter) Write(p []byte) (int, error) {
	queue.PushBytes(w.samples, p)
	return len(p), nil
}

func (pulseSampleWriter) Format() byte {
	return proto.FormatFloat32LE
}

func sourceByID(c *pulse.Client, id string) (*pulse.Source, error) {
	if id == "" {
		return c.DefaultSource()
	}
	return c.SourceByID(id)
}

func channelMap(channels types.Channel) (proto.ChannelMap, error) {
	switch channels {
	case 1:
		return proto.ChannelMap{proto.ChannelMono}, nil
	case 2:
		return proto.ChannelMap{proto.ChannelLeft, proto.ChannelRight}, nil
	default:
		return nil, fmt.Errorf("do not know how to configure %d channels", channels)
	}
}
