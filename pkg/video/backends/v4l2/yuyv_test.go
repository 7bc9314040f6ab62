//go:build linux
// +build linux

package v4l2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYUYVToRGB(t *testing.T) {
	// two gray pixels: neutral chroma keeps R==G==B
	rgb := yuyvToRGB([]byte{100, 128, 200, 128}, 2, 1)
	require.Len(t, rgb, 6)
	assert.Equal(t, []uint8{100, 100, 100, 200, 200, 200}, rgb)
}

func TestYUYVToRGBClamps(t *testing.T) {
	// saturated chroma must clamp instead of wrapping around
	rgb := yuyvToRGB([]byte{255, 255, 0, 255}, 2, 1)
	require.Len(t, rgb, 6)
	assert.EqualValues(t, 255, rgb[0])
	assert.EqualValues(t, 0, rgb[4])
}
