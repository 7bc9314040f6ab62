package video

import (
	"context"
	"fmt"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/video/registry"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

type (
	Frame         = types.Frame
	CaptureConfig = types.CaptureConfig
)

type Capture struct {
	types.Capture
}

func NewCapture(captureImpl types.Capture) *Capture {
	return &Capture{
		Capture: captureImpl,
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

// NewCaptureAuto opens a camera through the highest-priority registered
// backend that succeeds, or fails with device.ErrNoBackendAvailable.
// Backends are registered by blank-importing their packages; the choice
// is made once here and never re-evaluated for the lifetime of the
// handle.
func NewCaptureAuto(
	ctx context.Context,
	cfg CaptureConfig,
) (*Capture, error) {
	if factory := getLastSuccessfulCaptureFactory(); factory != nil {
		captureImpl, err := factory.NewCapture(ctx, cfg)
		if err == nil {
			return NewCapture(captureImpl), nil
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
		return NewCapture(captureImpl), nil
	}

	logger.Infof(ctx, "was unable to initialize any video capture: %v", mErr.ErrorOrNil())
	return nil, fmt.Errorf("%w: %v", device.ErrNoBackendAvailable, mErr.ErrorOrNil())
}
