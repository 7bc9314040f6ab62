//go:build linux
// +build linux

package v4l2

import (
	"context"
	"fmt"

	"github.com/blackjack/webcam"
	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

// pixelFormatYUYV is the V4L2 fourcc for packed YUV 4:2:2.
const pixelFormatYUYV = webcam.PixelFormat(0x56595559)

// frameWaitTimeout is the per-frame webcam.WaitForFrame timeout in
// seconds.
const frameWaitTimeout = 5

type Capture struct {
	guard   device.Guard
	cam     *webcam.Webcam
	width   int
	height  int
	fps     float64
	retries int
}

var _ types.Capture = (*Capture)(nil)

func NewCapture(
	ctx context.Context,
	cfg types.CaptureConfig,
) (*Capture, error) {
	cfg = cfg.WithDefaults()

	path := cfg.DeviceID
	if path == "" {
		path = "/dev/video0"
	}

	cam, err := webcam.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s': %v: %w", path, err, device.ErrDeviceUnavailable)
	}

	format, width, height, err := cam.SetImageFormat(pixelFormatYUYV, uint32(cfg.Width), uint32(cfg.Height))
	if err != nil {
		cam.Close()
		return nil, fmt.Errorf("unable to set the image format on '%s': %w", path, err)
	}
	if format != pixelFormatYUYV {
		cam.Close()
		return nil, fmt.Errorf("'%s' does not support the YUYV format", path)
	}
	if int(width) != cfg.Width || int(height) != cfg.Height {
		logger.Warnf(ctx, "failed to set the geometry to %dx%d (the camera reports %dx%d)",
			cfg.Width, cfg.Height, width, height)
	}

	if err := cam.SetFramerate(float32(cfg.FPS)); err != nil {
		logger.Warnf(ctx, "failed to set the FPS to %v: %v", cfg.FPS, err)
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, fmt.Errorf("unable to start streaming from '%s': %v: %w", path, err, device.ErrDeviceUnavailable)
	}

	return &Capture{
		cam:     cam,
		width:   int(width),
		height:  int(height),
		fps:     cfg.FPS,
		retries: cfg.ReadRetries,
	}, nil
}

func (c *Capture) ReadFrame(ctx context.Context) (types.Frame, error) {
	var frame types.Frame
	err := c.guard.Do(func() error {
		for attempt := 1; attempt <= c.retries; attempt++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.cam.WaitForFrame(frameWaitTimeout); err != nil {
				switch err.(type) {
				case *webcam.Timeout:
					logger.Warnf(ctx, "timed out waiting for a frame, retrying (%d/%d)...", attempt, c.retries)
					continue
				default:
					return fmt.Errorf("unable to wait for a frame: %v: %w", err, device.ErrDeviceUnavailable)
				}
			}
			raw, err := c.cam.ReadFrame()
			if err != nil {
				return fmt.Errorf("unable to read a frame: %v: %w", err, device.ErrDeviceUnavailable)
			}
			if len(raw) < c.width*c.height*2 {
				logger.Warnf(ctx, "received a truncated frame (%d bytes), retrying (%d/%d)...", len(raw), attempt, c.retries)
				continue
			}
			frame = types.Frame{
				Width:    c.width,
				Height:   c.height,
				Channels: types.FrameChannels,
				Pix:      yuyvToRGB(raw, c.width, c.height),
			}
			return nil
		}
		return fmt.Errorf("failed to read a frame after %d attempts: %w", c.retries, device.ErrDeviceUnavailable)
	})
	if err != nil {
		return types.Frame{}, err
	}
	return frame, nil
}

func (c *Capture) Width() int {
	return c.width
}

func (c *Capture) Height() int {
	return c.height
}

func (c *Capture) Channels() int {
	return types.FrameChannels
}

func (c *Capture) FPS() float64 {
	return c.fps
}

func (c *Capture) Close() error {
	return c.guard.Close(func() error {
		if err := c.cam.StopStreaming(); err != nil {
			logger.Errorf(context.Background(), "unable to stop streaming: %v", err)
		}
		return c.cam.Close()
	})
}
