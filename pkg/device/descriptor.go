package device

import (
	"fmt"
	"strings"
)

// Capability is a bit set describing what a device can do.
type Capability uint

const (
	CapAudioCapture Capability = 1 << iota
	CapAudioOutput
	CapVideoCapture
	CapPointerOutput
	CapKeyboardOutput
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapAudioCapture, "audio-capture"},
	{CapAudioOutput, "audio-output"},
	{CapVideoCapture, "video-capture"},
	{CapPointerOutput, "pointer-output"},
	{CapKeyboardOutput, "keyboard-output"},
}

func (c Capability) Has(cap Capability) bool {
	return c&cap != 0
}

func (c Capability) String() string {
	var names []string
	for _, entry := range capabilityNames {
		if c.Has(entry.cap) {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Descriptor is the static metadata record describing one enumerable
// device. It has no behavior. The ID is the canonical way to reference
// the device: passing it as the DeviceID of the open-config of the
// backend that produced the descriptor opens that exact device.
type Descriptor struct {
	ID           string
	Name         string
	Default      bool
	Capabilities Capability
}

func (d Descriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:           %s\n", d.ID)
	fmt.Fprintf(&sb, "Name:         %s\n", d.Name)
	fmt.Fprintf(&sb, "Default:      %v\n", d.Default)
	fmt.Fprintf(&sb, "Capabilities: %s\n", d.Capabilities)
	return sb.String()
}
