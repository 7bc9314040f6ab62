package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type (
	SampleRate    = types.SampleRate
	Channel       = types.Channel
	CaptureConfig = types.CaptureConfig
	OutputConfig  = types.OutputConfig
)

const (
	DefaultSampleRate      = types.DefaultSampleRate
	DefaultCaptureChannels = types.DefaultCaptureChannels
	DefaultOutputChannels  = types.DefaultOutputChannels
	DefaultBlockSize       = types.DefaultBlockSize
)

// Capture wraps a backend capture adapter and applies the contract-wide
// policies (the single transient-underrun retry).
type Capture struct {
	types.Capture

	retries int
}

func NewCapture(captureImpl types.Capture, cfg CaptureConfig) *Capture {
	cfg = cfg.WithDefaults()
	return &Capture{
		Capture: captureImpl,
		retries: cfg.UnderrunRetries,
	}
}

var (
	lastSuccessfulCaptureFactory       registry.CaptureFactory
	lastSuccessfulCaptureFactoryLocker sync.Mutex
)

func getLastSuccessfulCaptureFactory() registry.CaptureFactory {
	lastSuccessfulCaptureFactoryLocker.Lock()
	defer lastSuccessfulCaptureFactoryLocker.Unlock()
	return lastSuccessfulCaptureFactory
}

// NewCaptureAuto opens an audio capture device through the
// highest-priority registered backend that succeeds. Backends are
// registered by blank-importing their packages. The choice is made once
// here and never re-evaluated for the lifetime of the handle. If no
// backend succeeds the call fails with device.ErrNoBackendAvailable.
func NewCaptureAuto(
	ctx context.Context,
	cfg CaptureConfig,
) (*Capture, error) {
	if factory := getLastSuccessfulCaptureFactory(); factory != nil {
		captureImpl, err := factory.NewCapture(ctx, cfg)
		if err == nil {
			return NewCapture(captureImpl, cfg), nil
		}
		logger.Debugf(ctx, "the cached capture factory %T failed: %v", factory, err)
	}

	var mErr *multierror.Error
	for _, factory := range registry.CaptureFactories() {
		captureImpl, err := factory.NewCapture(ctx, cfg)
		logger.Debugf(ctx, "initializing capture via %T result is %v", factory, err)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("unable to initialize via %T: %w", factory, err))
			continue
		}

		lastSuccessfulCaptureFactoryLocker.Lock()
		lastSuccessfulCaptureFactory = factory
		lastSuccessfulCaptureFactoryLocker.Unlock()
		return NewCapture(captureImpl, cfg), nil
	}

	logger.Infof(ctx, "was unable to initialize any audio capture: %v", mErr.ErrorOrNil())
	return nil, fmt.Errorf("%w: %v", device.ErrNoBackendAvailable, mErr.ErrorOrNil())
}

func (c *Capture) ReadFrames(
	ctx context.Context,
	numFrames int,
) ([]float32, error) {
	samples, err := c.Capture.ReadFrames(ctx, numFrames)
	for attempt := 0; attempt < c.retries && isTransient(err); attempt++ {
		logger.Debugf(ctx, "transient capture error, retrying: %v", err)
		samples, err = c.Capture.ReadFrames(ctx, numFrames)
	}
	return samples, err
}

// isTransient reports whether the error is a one-off underrun/overflow
// worth a retry, as opposed to a definite end of stream or a dead
// device.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, device.ErrClosed) ||
		errors.Is(err, device.ErrDeviceUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, device.ErrInsufficientData)
}
