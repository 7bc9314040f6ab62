//go:build linux
// +build linux

package v4l2

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// InputDevices lists the /dev/video* nodes, taking the human-readable
// names from sysfs. The descriptor ID is the device node path.
func InputDevices(ctx context.Context) ([]device.Descriptor, error) {
	nodes, err := filepath.Glob("/dev/video*")
	if err != nil {
		return nil, err
	}
	sort.Strings(nodes)

	var result []device.Descriptor
	for _, node := range nodes {
		name := sysfsName(ctx, node)
		if name == "" {
			name = node
		}
		result = append(result, device.Descriptor{
			ID:           node,
			Name:         name,
			Default:      node == "/dev/video0",
			Capabilities: device.CapVideoCapture,
		})
	}
	return result, nil
}

func sysfsName(ctx context.Context, node string) string {
	sysPath := filepath.Join("/sys/class/video4linux", filepath.Base(node), "name")
	b, err := os.ReadFile(sysPath)
	if err != nil {
		logger.Debugf(ctx, "unable to read '%s': %v", sysPath, err)
		return ""
	}
	return strings.TrimSpace(string(b))
}
