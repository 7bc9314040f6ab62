package opencv

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/video/registry"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

const (
	Priority = 100
)

func init() {
	registry.RegisterCaptureFactory(Priority, CaptureOpenCVFactory{})
}

type CaptureOpenCVFactory struct{}

func (CaptureOpenCVFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	return NewCapture(ctx, cfg)
}
