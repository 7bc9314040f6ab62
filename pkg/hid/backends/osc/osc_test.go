package osc

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

func listenUDP(t *testing.T) (*net.UDPConn, string) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, conn.LocalAddr().String()
}

func receive(t *testing.T, conn *net.UDPConn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)
	return buf[:n]
}

func TestPointerSendsMessages(t *testing.T) {
	ctx := context.Background()
	conn, address := listenUDP(t)

	pointer, err := NewPointer(ctx, types.PointerConfig{DeviceID: address})
	require.NoError(t, err)
	defer pointer.Close()

	require.NoError(t, pointer.Move(ctx, 10, -5))
	packet := receive(t, conn)
	assert.True(t, bytes.Contains(packet, []byte("/pamiq-io/pointer/move")), "got: %q", packet)

	require.NoError(t, pointer.Scroll(ctx, 0, 1))
	packet = receive(t, conn)
	assert.True(t, bytes.Contains(packet, []byte("/pamiq-io/pointer/scroll")), "got: %q", packet)
}

func TestKeyboardSendsMessages(t *testing.T) {
	ctx := context.Background()
	conn, address := listenUDP(t)

	keyboard, err := NewKeyboard(ctx, types.KeyboardConfig{DeviceID: address})
	require.NoError(t, err)
	defer keyboard.Close()

	require.NoError(t, keyboard.Tap(ctx, types.KeyW))
	press := receive(t, conn)
	release := receive(t, conn)
	assert.True(t, bytes.Contains(press, []byte("/pamiq-io/keyboard/key")), "got: %q", press)
	assert.True(t, bytes.Contains(release, []byte("/pamiq-io/keyboard/key")), "got: %q", release)
}

func TestNewPointerRequiresAddress(t *testing.T) {
	t.Setenv(AddressEnvVar, "")
	_, err := NewPointer(context.Background(), types.PointerConfig{})
	require.Error(t, err)
}
