//go:build linux
// +build linux

package v4l2

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/video/registry"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

const (
	Priority = 60
)

func init() {
	registry.RegisterCaptureFactory(Priority, CaptureV4L2Factory{})
}

type CaptureV4L2Factory struct{}

func (CaptureV4L2Factory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	return NewCapture(ctx, cfg)
}
