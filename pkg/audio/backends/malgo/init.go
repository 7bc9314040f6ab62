package malgo

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
)

const (
	Priority = 70
)

func init() {
	registry.RegisterCaptureFactory(Priority, CaptureMalgoFactory{})
	registry.RegisterOutputFactory(Priority, OutputMalgoFactory{})
}

type CaptureMalgoFactory struct{}

func (CaptureMalgoFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	return NewCapture(ctx, cfg)
}

type OutputMalgoFactory struct{}

func (OutputMalgoFactory) NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error) {
	return NewOutput(ctx, cfg)
}
