package portaudio

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
)

const (
	Priority = 60
)

func init() {
	registry.RegisterCaptureFactory(Priority, CaptureFactory{})
	registry.RegisterOutputFactory(Priority, OutputFactory{})
}

type CaptureFactory struct{}

func (CaptureFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	return NewCapture(ctx, cfg)
}

type OutputFactory struct{}

func (OutputFactory) NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error) {
	return NewOutput(ctx, cfg)
}
