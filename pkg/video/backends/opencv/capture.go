package opencv

import (
	"context"
	"fmt"
	"strconv"

	"github.com/facebookincubator/go-belt/tool/logger"
	"gocv.io/x/gocv"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

type Capture struct {
	guard   device.Guard
	cam     *gocv.VideoCapture
	bgr     gocv.Mat
	rgb     gocv.Mat
	fps     float64
	retries int
}

var _ types.Capture = (*Capture)(nil)

func NewCapture(
	ctx context.Context,
	cfg types.CaptureConfig,
) (*Capture, error) {
	cfg = cfg.WithDefaults()

	cam, err := openCamera(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("unable to open the camera: %v: %w", err, device.ErrDeviceUnavailable)
	}
	if !cam.IsOpened() {
		cam.Close()
		return nil, fmt.Errorf("the camera did not open: %w", device.ErrDeviceUnavailable)
	}

	capture := &Capture{
		cam:     cam,
		bgr:     gocv.NewMat(),
		rgb:     gocv.NewMat(),
		retries: cfg.ReadRetries,
	}
	capture.configureCamera(ctx, cfg)
	capture.fps = cam.Get(gocv.VideoCaptureFPS)
	return capture, nil
}

// configureCamera applies the requested geometry, warning instead of
// failing when the camera does not honor a setting.
func (c *Capture) configureCamera(ctx context.Context, cfg types.CaptureConfig) {
	c.cam.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	if got := int(c.cam.Get(gocv.VideoCaptureFrameWidth)); got != cfg.Width {
		logger.Warnf(ctx, "failed to set the width to %d (the camera reports %d)", cfg.Width, got)
	}
	c.cam.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	if got := int(c.cam.Get(gocv.VideoCaptureFrameHeight)); got != cfg.Height {
		logger.Warnf(ctx, "failed to set the height to %d (the camera reports %d)", cfg.Height, got)
	}
	c.cam.Set(gocv.VideoCaptureFPS, cfg.FPS)
	if got := c.cam.Get(gocv.VideoCaptureFPS); got != cfg.FPS {
		logger.Warnf(ctx, "failed to set the FPS to %v (the camera reports %v)", cfg.FPS, got)
	}
}

func (c *Capture) ReadFrame(ctx context.Context) (types.Frame, error) {
	var frame types.Frame
	err := c.guard.Do(func() error {
		for attempt := 1; attempt <= c.retries; attempt++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if c.cam.Read(&c.bgr) && !c.bgr.Empty() {
				// OpenCV hands the frame over as BGR
				gocv.CvtColor(c.bgr, &c.rgb, gocv.ColorBGRToRGB)
				pix := c.rgb.ToBytes()
				frame = types.Frame{
					Width:    c.rgb.Cols(),
					Height:   c.rgb.Rows(),
					Channels: c.rgb.Channels(),
					Pix:      pix,
				}
				return nil
			}
			logger.Warnf(ctx, "failed to read a frame, retrying (%d/%d)...", attempt, c.retries)
		}
		return fmt.Errorf("failed to read a frame after %d attempts: %w", c.retries, device.ErrDeviceUnavailable)
	})
	if err != nil {
		return types.Frame{}, err
	}
	return frame, nil
}

func (c *Capture) Width() int {
	return int(c.cam.Get(gocv.VideoCaptureFrameWidth))
}

func (c *Capture) Height() int {
	return int(c.cam.Get(gocv.VideoCaptureFrameHeight))
}

func (c *Capture) Channels() int {
	return types.FrameChannels
}

func (c *Capture) FPS() float64 {
	return c.fps
}

func (c *Capture) Close() error {
	return c.guard.Close(func() error {
		c.bgr.Close()
		c.rgb.Close()
		return c.cam.Close()
	})
}

func openCamera(id string) (*gocv.VideoCapture, error) {
	if id == "" {
		return gocv.OpenVideoCapture(0)
	}
	if idx, err := strconv.Atoi(id); err == nil {
		return gocv.OpenVideoCapture(idx)
	}
	return gocv.OpenVideoCapture(id)
}
