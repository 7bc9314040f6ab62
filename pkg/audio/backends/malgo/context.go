package malgo

import (
	"context"
	"encoding/hex"
	"fmt"
	"unsafe"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/gen2brain/malgo"
)

func newContext(ctx context.Context) (*malgo.AllocatedContext, error) {
	return malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debugf(ctx, "miniaudio: %s", message)
	})
}

func freeContext(malgoCtx *malgo.AllocatedContext) {
	_ = malgoCtx.Uninit()
	malgoCtx.Free()
}

// idString is the canonical descriptor ID for a miniaudio device: the
// hex form of its native ID bytes.
func idString(id malgo.DeviceID) string {
	raw := id[:]
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	return hex.EncodeToString(raw[:end])
}

// deviceIDPointer resolves a descriptor ID (or a device name) back into
// a native device ID pointer; empty means the default device.
func deviceIDPointer(
	malgoCtx *malgo.AllocatedContext,
	deviceType malgo.DeviceType,
	id string,
) (unsafe.Pointer, error) {
	if id == "" {
		return nil, nil
	}
	infos, err := malgoCtx.Devices(deviceType)
	if err != nil {
		return nil, fmt.Errorf("unable to list the devices: %w", err)
	}
	for i := range infos {
		if idString(infos[i].ID) == id || infos[i].Name() == id {
			return infos[i].ID.Pointer(), nil
		}
	}
	return nil, fmt.Errorf("no device with ID or name %q", id)
}
