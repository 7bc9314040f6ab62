package video

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

// CaptureDummy produces black frames of the configured geometry.
type CaptureDummy struct {
	guard  device.Guard
	width  int
	height int
	fps    float64

	BackendCalls int
}

var _ types.Capture = (*CaptureDummy)(nil)

func NewCaptureDummy(cfg CaptureConfig) *CaptureDummy {
	cfg = cfg.WithDefaults()
	return &CaptureDummy{
		width:  cfg.Width,
		height: cfg.Height,
		fps:    cfg.FPS,
	}
}

func (c *CaptureDummy) ReadFrame(ctx context.Context) (Frame, error) {
	var frame Frame
	err := c.guard.Do(func() error {
		c.BackendCalls++
		frame = Frame{
			Width:    c.width,
			Height:   c.height,
			Channels: types.FrameChannels,
			Pix:      make([]uint8, c.width*c.height*types.FrameChannels),
		}
		return nil
	})
	if err != nil {
		return Frame{}, err
	}
	return frame, nil
}

func (c *CaptureDummy) Width() int    { return c.width }
func (c *CaptureDummy) Height() int   { return c.height }
func (c *CaptureDummy) Channels() int { return types.FrameChannels }
func (c *CaptureDummy) FPS() float64  { return c.fps }

func (c *CaptureDummy) Close() error {
	return c.guard.Close(func() error { return nil })
}
