package types

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// PointerConfig configures a pointer injection handle. DeviceID is
// backend-specific: a uinput device node directory for uinput, a
// "host:port" UDP address for the OSC backend, empty for the platform
// default.
type PointerConfig struct {
	DeviceID string
}

func (cfg PointerConfig) WithDefaults() PointerConfig {
	return cfg
}

// KeyboardConfig configures a keyboard injection handle. See
// PointerConfig for the DeviceID semantics.
type KeyboardConfig struct {
	DeviceID string
}

func (cfg KeyboardConfig) WithDefaults() KeyboardConfig {
	return cfg
}
