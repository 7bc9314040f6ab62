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

type fakeOutputFactory struct{}

func (fakeOutputFactory) NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error) {
	return NewOutputDummy(cfg), nil
}

func TestNewOutputAuto(t *testing.T) {
	ctx := context.Background()

	t.Run("NoBackendAvailable", func(t *testing.T) {
		_, err := NewOutputAuto(ctx, OutputConfig{})
		require.ErrorIs(t, err, device.ErrNoBackendAvailable)
	})

	registry.RegisterOutputFactory(50, fakeOutputFactory{})

	t.Run("SelectsRegisteredBackend", func(t *testing.T) {
		output, err := NewOutputAuto(ctx, OutputConfig{Channels: 2})
		require.NoError(t, err)
		defer output.Close()
		require.NoError(t, output.WriteFrames(ctx, make([]float32, 256*2)))
	})
}

func TestOutputWriteOrder(t *testing.T) {
	ctx := context.Background()
	impl := NewOutputDummy(OutputConfig{Channels: 1})
	output := NewOutput(impl, OutputConfig{Channels: 1})

	require.NoError(t, output.WriteFrames(ctx, []float32{1, 2}))
	require.NoError(t, output.WriteFrames(ctx, []float32{3}))
	assert.Equal(t, []float32{1, 2, 3}, impl.Written)
}

func TestOutputBufferOverrun(t *testing.T) {
	ctx := context.Background()
	cfg := OutputConfig{Channels: 1, BlockSize: 4, QueueBlocks: 1}
	impl := NewOutputDummy(cfg)
	output := NewOutput(impl, cfg)

	require.NoError(t, output.WriteFrames(ctx, make([]float32, 4)))
	err := output.WriteFrames(ctx, make([]float32, 4))
	require.ErrorIs(t, err, device.ErrBufferOverrun)
	assert.Len(t, impl.Written, 4, "nothing was dropped")
}

func TestOutputUseAfterClose(t *testing.T) {
	ctx := context.Background()
	impl := NewOutputDummy(OutputConfig{Channels: 1})
	output := NewOutput(impl, OutputConfig{Channels: 1})

	require.NoError(t, output.Close())
	require.NoError(t, output.Close())

	err := output.WriteFrames(ctx, []float32{0})
	require.ErrorIs(t, err, device.ErrClosed)
	assert.Zero(t, impl.BackendCalls)
}
