package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", Capability(0).String())
	assert.Equal(t, "audio-capture", CapAudioCapture.String())
	assert.Equal(t, "audio-capture|audio-output", (CapAudioCapture | CapAudioOutput).String())
	assert.True(t, (CapVideoCapture | CapPointerOutput).Has(CapPointerOutput))
	assert.False(t, CapVideoCapture.Has(CapKeyboardOutput))
}

func TestDescriptorString(t *testing.T) {
	d := Descriptor{
		ID:           "alsa_input.pci-0000_00_1f.3.analog-stereo",
		Name:         "Built-in Audio Analog Stereo",
		Default:      true,
		Capabilities: CapAudioCapture,
	}
	s := d.String()
	assert.Contains(t, s, d.ID)
	assert.Contains(t, s, d.Name)
	assert.Contains(t, s, "audio-capture")
}
