package hid

import (
	"context"
	"fmt"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/registry"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type (
	Button         = types.Button
	Key            = types.Key
	PointerConfig  = types.PointerConfig
	KeyboardConfig = types.KeyboardConfig
)

// Pointer wraps a backend pointer injection adapter.
type Pointer struct {
	types.Pointer
}

func NewPointer(pointerImpl types.Pointer) *Pointer {
	return &Pointer{
		Pointer: pointerImpl,
	}
}

var (
	lastSuccessfulPointerFactory       registry.PointerFactory
	lastSuccessfulPointerFactoryLocker sync.Mutex
)

func getLastSuccessfulPointerFactory() registry.PointerFactory {
	lastSuccessfulPointerFactoryLocker.Lock()
	defer lastSuccessfulPointerFactoryLocker.Unlock()
	return lastSuccessfulPointerFactory
}

// NewPointerAuto opens a pointer injection handle through the
// highest-priority registered backend that succeeds. Backends are
// registered by blank-importing their packages. If no backend succeeds
// the call fails with device.ErrNoBackendAvailable.
func NewPointerAuto(
	ctx context.Context,
	cfg PointerConfig,
) (*Pointer, error) {
	if factory := getLastSuccessfulPointerFactory(); factory != nil {
		pointerImpl, err := factory.NewPointer(ctx, cfg)
		if err == nil {
			return NewPointer(pointerImpl), nil
		}
		logger.Debugf(ctx, "the cached pointer factory %T failed: %v", factory, err)
	}

	var mErr *multierror.Error
	for _, factory := range registry.PointerFactories() {
		pointerImpl, err := factory.NewPointer(ctx, cfg)
		logger.Debugf(ctx, "initializing pointer via %T result is %v", factory, err)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("unable to initialize via %T: %w", factory, err))
			continue
		}

		lastSuccessfulPointerFactoryLocker.Lock()
		lastSuccessfulPointerFactory = factory
		lastSuccessfulPointerFactoryLocker.Unlock()
		return NewPointer(pointerImpl), nil
	}

	logger.Infof(ctx, "was unable to initialize any pointer injector: %v", mErr.ErrorOrNil())
	return nil, fmt.Errorf("%w: %v", device.ErrNoBackendAvailable, mErr.ErrorOrNil())
}
