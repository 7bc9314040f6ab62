package v4l2_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/pamiq/pamiq-io/pkg/video/backends/v4l2"
	"github.com/pamiq/pamiq-io/pkg/video/registry"
)

// The package must stay importable on every platform; off Linux it
// contributes no factory.
func TestRegistersOnlyOnLinux(t *testing.T) {
	if runtime.GOOS == "linux" {
		require.Len(t, registry.CaptureFactories(), 1)
		return
	}
	require.Empty(t, registry.CaptureFactories())
}
