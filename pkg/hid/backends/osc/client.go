package osc

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/hypebeast/go-osc/osc"

	"github.com/pamiq/pamiq-io/pkg/device"
)

// AddressEnvVar names the environment variable consulted when no
// explicit "host:port" address is configured.
const AddressEnvVar = "PAMIQ_IO_OSC_ADDRESS"

func newClient(deviceID string) (*osc.Client, error) {
	address := deviceID
	if address == "" {
		address = os.Getenv(AddressEnvVar)
	}
	if address == "" {
		return nil, fmt.Errorf("no OSC address is configured (set %s or pass a 'host:port' device ID)", AddressEnvVar)
	}

	host, portString, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the OSC address '%s': %w", address, err)
	}
	port, err := strconv.Atoi(portString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the OSC port '%s': %w", portString, err)
	}

	return osc.NewClient(host, port), nil
}

func sendMessage(client *osc.Client, addr string, args ...interface{}) error {
	message := osc.NewMessage(addr, args...)
	if err := client.Send(message); err != nil {
		return fmt.Errorf("unable to send '%s': %v: %w", addr, err, device.ErrInjectionFailed)
	}
	return nil
}
