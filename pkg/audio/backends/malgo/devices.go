package malgo

import (
	"context"
	"fmt"

	"github.com/gen2brain/malgo"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// InputDevices enumerates the capture devices miniaudio can see.
func InputDevices(ctx context.Context) ([]device.Descriptor, error) {
	return devices(ctx, malgo.Capture, device.CapAudioCapture)
}

// OutputDevices enumerates the playback devices miniaudio can see.
func OutputDevices(ctx context.Context) ([]device.Descriptor, error) {
	return devices(ctx, malgo.Playback, device.CapAudioOutput)
}

func devices(
	ctx context.Context,
	deviceType malgo.DeviceType,
	caps device.Capability,
) ([]device.Descriptor, error) {
	malgoCtx, err := newContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize a miniaudio context: %w", err)
	}
	defer freeContext(malgoCtx)

	infos, err := malgoCtx.Devices(deviceType)
	if err != nil {
		return nil, fmt.Errorf("unable to list the devices: %w", err)
	}

	var result []device.Descriptor
	for i := range infos {
		result = append(result, device.Descriptor{
			ID:           idString(infos[i].ID),
			Name:         infos[i].Name(),
			Default:      infos[i].IsDefault != 0,
			Capabilities: caps,
		})
	}
	return result, nil
}
