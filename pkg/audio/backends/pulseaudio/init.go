package pulseaudio

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
)

const (
	Priority = 100
)

func init() {
	registry.RegisterCaptureFactory(Priority, CapturePulseFactory{})
	registry.RegisterOutputFactory(Priority, OutputPulseFactory{})
}

type CapturePulseFactory struct{}

func (CapturePulseFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	return NewCapture(ctx, cfg)
}

type OutputPulseFactory struct{}

func (OutputPulseFactory) NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error) {
	return NewOutput(ctx, cfg)
}
