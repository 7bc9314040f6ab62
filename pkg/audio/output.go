package audio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/jfreymuth/oggvorbis"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type Output struct {
	types.Output

	blockSize int
}

func NewOutput(outputImpl types.Output, cfg OutputConfig) *Output {
	cfg = cfg.WithDefaults()
	return &Output{
		Output:    outputImpl,
		blockSize: cfg.BlockSize,
	}
}

var (
	lastSuccessfulOutputFactory       registry.OutputFactory
	lastSuccessfulOutputFactoryLocker sync.Mutex
)

func getLastSuccessfulOutputFactory() registry.OutputFactory {
	lastSuccessfulOutputFactoryLocker.Lock()
	defer lastSuccessfulOutputFactoryLocker.Unlock()
	return lastSuccessfulOutputFactory
}

// NewOutputAuto opens an audio output device through the
// highest-priority registered backend that succeeds, or fails with
// device.ErrNoBackendAvailable.
func NewOutputAuto(
	ctx context.Context,
	cfg OutputConfig,
) (*Output, error) {
	if factory := getLastSuccessfulOutputFactory(); factory != nil {
		outputImpl, err := factory.NewOutput(ctx, cfg)
		if err == nil {
			return NewOutput(outputImpl, cfg), nil
		}
		logger.Debugf(ctx, "the cached output factory %T failed: %v", factory, err)
	}

	var mErr *multierror.Error
	for _, factory := range registry.OutputFactories() {
		outputImpl, err := factory.NewOutput(ctx, cfg)
		logger.Debugf(ctx, "initializing output via %T result is %v", factory, err)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("unable to initialize via %T: %w", factory, err))
			continue
		}

		lastSuccessfulOutputFactoryLocker.Lock()
		lastSuccessfulOutputFactory = factory
		lastSuccessfulOutputFactoryLocker.Unlock()
		return NewOutput(outputImpl, cfg), nil
	}

	logger.Infof(ctx, "was unable to initialize any audio output: %v", mErr.ErrorOrNil())
	return nil, fmt.Errorf("%w: %v", device.ErrNoBackendAvailable, mErr.ErrorOrNil())
}

// WriteVorbis decodes an Ogg Vorbis stream and plays it through the
// output. The stream's sample rate and channel count must match the
// ones the output was opened with.
func (o *Output) WriteVorbis(
	ctx context.Context,
	rawReader io.Reader,
) error {
	oggReader, err := oggvorbis.NewReader(rawReader)
	if err != nil {
		return fmt.Errorf("unable to initialize a vorbis reader: %w", err)
	}
	if SampleRate(oggReader.SampleRate()) != o.SampleRate() {
		return fmt.Errorf("the stream sample rate %d does not match the output sample rate %d",
			oggReader.SampleRate(), o.SampleRate())
	}
	if Channel(oggReader.Channels()) != o.Channels() {
		return fmt.Errorf("the stream has %d channels, but the output was opened with %d",
			oggReader.Channels(), o.Channels())
	}

	block := make([]float32, o.blockSize*int(o.Channels()))
	for {
		n, err := oggReader.Read(block)
		if n > 0 {
			if writeErr := o.WriteFrames(ctx, block[:n]); writeErr != nil {
				return writeErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to decode the vorbis stream: %w", err)
		}
	}
}
