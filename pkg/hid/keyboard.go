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

// Keyboard wraps a backend keyboard injection adapter.
type Keyboard struct {
	types.Keyboard
}

func NewKeyboard(keyboardImpl types.Keyboard) *Keyboard {
	return &Keyboard{
		Keyboard: keyboardImpl,
	}
}

var (
	lastSuccessfulKeyboardFactory       registry.KeyboardFactory
	lastSuccessfulKeyboardFactoryLocker sync.Mutex
)

func getLastSuccessfulKeyboardFactory() registry.KeyboardFactory {
	lastSuccessfulKeyboardFactoryLocker.Lock()
	defer lastSuccessfulKeyboardFactoryLocker.Unlock()
	return lastSuccessfulKeyboardFactory
}

// NewKeyboardAuto opens a keyboard injection handle through the
// highest-priority registered backend that succeeds. See NewPointerAuto
// for the selection semantics.
func NewKeyboardAuto(
	ctx context.Context,
	cfg KeyboardConfig,
) (*Keyboard, error) {
	if factory := getLastSuccessfulKeyboardFactory(); factory != nil {
		keyboardImpl, err := factory.NewKeyboard(ctx, cfg)
		if err == nil {
			return NewKeyboard(keyboardImpl), nil
		}
		logger.Debugf(ctx, "the cached keyboard factory %T failed: %v", factory, err)
	}

	var mErr *multierror.Error
	for _, factory := range registry.KeyboardFactories() {
		keyboardImpl, err := factory.NewKeyboard(ctx, cfg)
		logger.Debugf(ctx, "initializing keyboard via %T result is %v", factory, err)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("unable to initialize via %T: %w", factory, err))
			continue
		}

		lastSuccessfulKeyboardFactoryLocker.Lock()
		lastSuccessfulKeyboardFactory = factory
		lastSuccessfulKeyboardFactoryLocker.Unlock()
		return NewKeyboard(keyboardImpl), nil
	}

	logger.Infof(ctx, "was unable to initialize any keyboard injector: %v", mErr.ErrorOrNil())
	return nil, fmt.Errorf("%w: %v", device.ErrNoBackendAvailable, mErr.ErrorOrNil())
}
