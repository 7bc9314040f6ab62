package types

import (
	"time"
)

// SampleRate is a sample rate in Hz.
type SampleRate uint

// Channel is an amount of channels.
type Channel uint16

const (
	DefaultSampleRate SampleRate = 44100

	DefaultCaptureChannels Channel = 1
	DefaultOutputChannels  Channel = 2

	// DefaultBlockSize is the amount of frames moved between the
	// backend and the contract per hop.
	DefaultBlockSize = 1024
)

// CaptureConfig describes how to open an audio capture device.
//
// DeviceID is the ID from a Descriptor of the same backend; empty means
// the default capture device.
type CaptureConfig struct {
	DeviceID   string
	SampleRate SampleRate
	Channels   Channel
	BlockSize  int

	// UnderrunRetries is how many times a transient backend
	// underrun/overflow is retried internally before the error is
	// surfaced. This is policy, not contract.
	UnderrunRetries int
}

func (cfg CaptureConfig) WithDefaults() CaptureConfig {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Channels == 0 {
		cfg.Channels = DefaultCaptureChannels
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.UnderrunRetries == 0 {
		cfg.UnderrunRetries = 1
	}
	return cfg
}

// OutputConfig describes how to open an audio output device.
type OutputConfig struct {
	DeviceID   string
	SampleRate SampleRate
	Channels   Channel
	BlockSize  int

	// QueueBlocks is the capacity of the output queue, in blocks of
	// BlockSize frames. A write that does not fit within WriteTimeout
	// fails with device.ErrBufferOverrun instead of dropping data.
	QueueBlocks  int
	WriteTimeout time.Duration
}

const DefaultWriteTimeout = time.Second

func (cfg OutputConfig) WithDefaults() OutputConfig {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Channels == 0 {
		cfg.Channels = DefaultOutputChannels
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.QueueBlocks == 0 {
		cfg.QueueBlocks = 8
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	return cfg
}
