package sendinput_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/pamiq/pamiq-io/pkg/hid/backends/sendinput"
	"github.com/pamiq/pamiq-io/pkg/hid/registry"
)

// The package must stay importable on every platform; off Windows it
// contributes no factories.
func TestRegistersOnlyOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		require.Len(t, registry.PointerFactories(), 1)
		require.Len(t, registry.KeyboardFactories(), 1)
		return
	}
	require.Empty(t, registry.PointerFactories())
	require.Empty(t, registry.KeyboardFactories())
}
