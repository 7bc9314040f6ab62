package opencv

import (
	"context"
	"fmt"
	"strconv"

	"github.com/facebookincubator/go-belt/tool/logger"
	"gocv.io/x/gocv"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// MaxProbedIndex bounds the camera index probing during enumeration.
// OpenCV has no portable listing call, so the backend opens indices one
// by one until the first gap.
const MaxProbedIndex = 10

// InputDevices probes the camera indices OpenCV can open. The
// descriptor ID is the camera index.
func InputDevices(ctx context.Context) ([]device.Descriptor, error) {
	var result []device.Descriptor
	for idx := 0; idx < MaxProbedIndex; idx++ {
		cam, err := gocv.OpenVideoCapture(idx)
		if err != nil || !cam.IsOpened() {
			if cam != nil {
				cam.Close()
			}
			logger.Debugf(ctx, "camera index %d is not openable: %v", idx, err)
			break
		}
		width := int(cam.Get(gocv.VideoCaptureFrameWidth))
		height := int(cam.Get(gocv.VideoCaptureFrameHeight))
		cam.Close()

		result = append(result, device.Descriptor{
			ID:           strconv.Itoa(idx),
			Name:         fmt.Sprintf("camera %d (%dx%d)", idx, width, height),
			Default:      idx == 0,
			Capabilities: device.CapVideoCapture,
		})
	}
	return result, nil
}
