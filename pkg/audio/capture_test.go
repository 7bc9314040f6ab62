package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
	"github.com/pamiq/pamiq-io/pkg/device"
)

type fakeCaptureFactory struct {
	frames int
}

func (f fakeCaptureFactory) NewCapture(ctx context.Context, cfg types.CaptureConfig) (types.Capture, error) {
	cfg = cfg.WithDefaults()
	return NewCaptureDummy(cfg.SampleRate, cfg.Channels, make([]float32, f.frames*int(cfg.Channels))), nil
}

// The subtests share the process-wide registry, so the empty-registry
// check has to run before the fake factory is registered.
func TestNewCaptureAuto(t *testing.T) {
	ctx := context.Background()

	t.Run("NoBackendAvailable", func(t *testing.T) {
		_, err := NewCaptureAuto(ctx, CaptureConfig{})
		require.ErrorIs(t, err, device.ErrNoBackendAvailable)
		require.NotErrorIs(t, err, device.ErrDeviceUnavailable)
	})

	registry.RegisterCaptureFactory(50, fakeCaptureFactory{frames: 1024})

	t.Run("SelectsRegisteredBackend", func(t *testing.T) {
		capture, err := NewCaptureAuto(ctx, CaptureConfig{Channels: 1})
		require.NoError(t, err)
		defer capture.Close()

		samples, err := capture.ReadFrames(ctx, 1024)
		require.NoError(t, err)
		assert.Len(t, samples, 1024)
	})
}

func TestCaptureReadExactlyBuffered(t *testing.T) {
	ctx := context.Background()
	impl := NewCaptureDummy(44100, 1, make([]float32, 1024))
	capture := NewCapture(impl, CaptureConfig{Channels: 1})

	samples, err := capture.ReadFrames(ctx, 1024)
	require.NoError(t, err)
	assert.Len(t, samples, 1024)
}

func TestCaptureInsufficientData(t *testing.T) {
	ctx := context.Background()
	impl := NewCaptureDummy(44100, 1, make([]float32, 500))
	capture := NewCapture(impl, CaptureConfig{Channels: 1})

	_, err := capture.ReadFrames(ctx, 2048)
	require.ErrorIs(t, err, device.ErrInsufficientData)
	// the configured single retry reached the backend twice
	assert.Equal(t, 2, impl.BackendCalls)
}

func TestCaptureStereoSampleCount(t *testing.T) {
	ctx := context.Background()
	impl := NewCaptureDummy(48000, 2, make([]float32, 512*2))
	capture := NewCapture(impl, CaptureConfig{Channels: 2})

	samples, err := capture.ReadFrames(ctx, 512)
	require.NoError(t, err)
	assert.Len(t, samples, 512*2)
	assert.EqualValues(t, 2, capture.Channels())
	assert.EqualValues(t, 48000, capture.SampleRate())
}

func TestCaptureUseAfterClose(t *testing.T) {
	ctx := context.Background()
	impl := NewCaptureDummy(44100, 1, make([]float32, 4096))
	capture := NewCapture(impl, CaptureConfig{Channels: 1})

	require.NoError(t, capture.Close())
	require.NoError(t, capture.Close(), "close is idempotent")

	_, err := capture.ReadFrames(ctx, 1)
	require.ErrorIs(t, err, device.ErrClosed)
	assert.Zero(t, impl.BackendCalls, "the backend must not be reached after close")
}
