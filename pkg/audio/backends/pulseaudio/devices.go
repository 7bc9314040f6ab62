package pulseaudio

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/jfreymuth/pulse"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// InputDevices enumerates the sources known to the Pulse server.
func InputDevices(ctx context.Context) ([]device.Descriptor, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("unable to open a client to Pulse: %w", err)
	}
	defer c.Close()

	sources, err := c.ListSources()
	if err != nil {
		return nil, fmt.Errorf("unable to list the sources: %w", err)
	}

	var defaultID string
	if defaultSource, err := c.DefaultSource(); err == nil {
		defaultID = defaultSource.ID()
	} else {
		logger.Debugf(ctx, "unable to get the default source: %v", err)
	}

	var result []device.Descriptor
	for _, source := range sources {
		result = append(result, device.Descriptor{
			ID:           source.ID(),
			Name:         source.Name(),
			Default:      source.ID() == defaultID,
			Capabilities: device.CapAudioCapture,
		})
	}
	return result, nil
}

// OutputDevices enumerates the sinks known to the Pulse server.
func OutputDevices(ctx context.Context) ([]device.Descriptor, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("unable to open a client to Pulse: %w", err)
	}
	defer c.Close()

	sinks, err := c.ListSinks()
	if err != nil {
		return nil, fmt.Errorf("unable to list the sinks: %w", err)
	}

	var defaultID string
	if defaultSink, err := c.DefaultSink(); err == nil {
		defaultID = defaultSink.ID()
	} else {
		logger.Debugf(ctx, "unable to get the default sink: %v", err)
	}

	var result []device.Descriptor
	for _, sink := range sinks {
		result = append(result, device.Descriptor{
			ID:           sink.ID(),
			Name:         sink.Name(),
			Default:      sink.ID() == defaultID,
			Capabilities: device.CapAudioOutput,
		})
	}
	return result, nil
}
