package types

// FrameChannels is the fixed amount of color channels of a Frame.
const FrameChannels = 3

// Frame is a single captured image: 8-bit RGB, interleaved, row-major,
// origin at the top-left corner, regardless of the backend's native
// representation.
type Frame struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// CaptureConfig describes how to open a video capture device.
//
// DeviceID is the ID from a Descriptor of the same backend; empty means
// the default camera.
type CaptureConfig struct {
	DeviceID string
	Width    int
	Height   int
	FPS      float64

	// ReadRetries is how many attempts a single ReadFrame makes before
	// giving up on the device.
	ReadRetries int
}

func (cfg CaptureConfig) WithDefaults() CaptureConfig {
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	if cfg.FPS == 0 {
		cfg.FPS = 30
	}
	if cfg.ReadRetries == 0 {
		cfg.ReadRetries = 10
	}
	return cfg
}
