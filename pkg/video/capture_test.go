package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/video/registry"
	"github.com/pamiq/pamiq-io/pkg/video/types"
)

// No backend package is imported by these tests, so the registry is
// empty until TestNewCaptureAutoDeviceID registers its fake; the
// empty-registry check has to run first.
func TestNewCaptureAutoNoBackend(t *testing.T) {
	_, err := NewCaptureAuto(context.Background(), CaptureConfig{})
	require.ErrorIs(t, err, device.ErrNoBackendAvailable)
	require.NotErrorIs(t, err, device.ErrDeviceUnavailable)
}

type recordingCaptureFactory struct {
	gotDeviceID *string
}

func (f recordingCaptureFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	*f.gotDeviceID = cfg.DeviceID
	return NewCaptureDummy(cfg), nil
}

func TestNewCaptureAutoDeviceID(t *testing.T) {
	var gotDeviceID string
	registry.RegisterCaptureFactory(50, recordingCaptureFactory{gotDeviceID: &gotDeviceID})

	capture, err := NewCaptureAuto(context.Background(), CaptureConfig{DeviceID: "cam42"})
	require.NoError(t, err)
	defer capture.Close()
	assert.Equal(t, "cam42", gotDeviceID, "the descriptor ID reaches the backend unchanged")
}

func TestCaptureFrameGeometry(t *testing.T) {
	ctx := context.Background()
	capture := NewCapture(NewCaptureDummy(CaptureConfig{Width: 320, Height: 240}))
	defer capture.Close()

	frame, err := capture.ReadFrame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 320, frame.Width)
	assert.Equal(t, 240, frame.Height)
	assert.Equal(t, types.FrameChannels, frame.Channels)
	assert.Len(t, frame.Pix, 320*240*types.FrameChannels)
}

func TestCaptureUseAfterClose(t *testing.T) {
	ctx := context.Background()
	impl := NewCaptureDummy(CaptureConfig{})
	capture := NewCapture(impl)

	require.NoError(t, capture.Close())
	require.NoError(t, capture.Close(), "close is idempotent")

	_, err := capture.ReadFrame(ctx)
	require.ErrorIs(t, err, device.ErrClosed)
	assert.Zero(t, impl.BackendCalls)
}
