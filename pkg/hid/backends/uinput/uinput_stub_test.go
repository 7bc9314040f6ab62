package uinput_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/pamiq/pamiq-io/pkg/hid/backends/uinput"
	"github.com/pamiq/pamiq-io/pkg/hid/registry"
)

// The package must stay importable on every platform; off Linux it
// contributes no factories.
func TestRegistersOnlyOnLinux(t *testing.T) {
	if runtime.GOOS == "linux" {
		require.Len(t, registry.PointerFactories(), 1)
		require.Len(t, registry.KeyboardFactories(), 1)
		return
	}
	require.Empty(t, registry.PointerFactories())
	require.Empty(t, registry.KeyboardFactories())
}
