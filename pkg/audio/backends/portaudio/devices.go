package portaudio

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gordonklaus/portaudio"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// Devices enumerates everything PortAudio knows about, both directions.
// The descriptor ID is the PortAudio device index.
func Devices(ctx context.Context) ([]device.Descriptor, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("unable to list the devices: %w", err)
	}

	defaultInput, _ := portaudio.DefaultInputDevice()
	defaultOutput, _ := portaudio.DefaultOutputDevice()

	var result []device.Descriptor
	for idx, info := range infos {
		var caps device.Capability
		if info.MaxInputChannels > 0 {
			caps |= device.CapAudioCapture
		}
		if info.MaxOutputChannels > 0 {
			caps |= device.CapAudioOutput
		}
		result = append(result, device.Descriptor{
			ID:           strconv.Itoa(idx),
			Name:         info.Name,
			Default:      info == defaultInput || info == defaultOutput,
			Capabilities: caps,
		})
	}
	return result, nil
}

func deviceByID(id string) (*portaudio.DeviceInfo, error) {
	infos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("unable to list the devices: %w", err)
	}

	if idx, err := strconv.Atoi(id); err == nil {
		if idx < 0 || idx >= len(infos) {
			return nil, fmt.Errorf("device index %d is out of range [0, %d)", idx, len(infos))
		}
		return infos[idx], nil
	}

	for _, info := range infos {
		if info.Name == id {
			return info, nil
		}
	}
	return nil, fmt.Errorf("no device with ID or name %q", id)
}
