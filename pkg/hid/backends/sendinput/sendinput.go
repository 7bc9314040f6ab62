//go:build windows
// +build windows

package sendinput

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/pamiq/pamiq-io/pkg/device"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseEventFMove       = 0x0001
	mouseEventFLeftDown   = 0x0002
	mouseEventFLeftUp     = 0x0004
	mouseEventFRightDown  = 0x0008
	mouseEventFRightUp    = 0x0010
	mouseEventFMiddleDown = 0x0020
	mouseEventFMiddleUp   = 0x0040
	mouseEventFWheel      = 0x0800
	mouseEventFHWheel     = 0x1000

	keyEventFKeyUp       = 0x0002
	keyEventFScanCode    = 0x0008
	keyEventFExtendedKey = 0x0001

	wheelDelta = 120
)

type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type keybdInput struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
	// padding up to the size of the larger MOUSEINPUT union member
	_ [8]byte
}

type mouseInputPacket struct {
	Type uint32
	Mi   mouseInput
}

type keybdInputPacket struct {
	Type uint32
	Ki   keybdInput
}

func sendMouseInput(mi mouseInput) error {
	packet := mouseInputPacket{
		Type: inputMouse,
		Mi:   mi,
	}
	return send(unsafe.Pointer(&packet), unsafe.Sizeof(packet))
}

func sendKeybdInput(ki keybdInput) error {
	packet := keybdInputPacket{
		Type: inputKeyboard,
		Ki:   ki,
	}
	return send(unsafe.Pointer(&packet), unsafe.Sizeof(packet))
}

func send(packet unsafe.Pointer, size uintptr) error {
	sent, _, callErr := procSendInput.Call(1, uintptr(packet), size)
	if sent != 1 {
		return fmt.Errorf("SendInput injected %d of 1 events: %v: %w", sent, callErr, device.ErrInjectionFailed)
	}
	return nil
}
