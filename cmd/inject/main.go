package main

import (
	"context"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"

	"github.com/pamiq/pamiq-io/pkg/hid"
	_ "github.com/pamiq/pamiq-io/pkg/hid/backends/osc"
	_ "github.com/pamiq/pamiq-io/pkg/hid/backends/sendinput"
	_ "github.com/pamiq/pamiq-io/pkg/hid/backends/uinput"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	deviceID := pflag.String("device", "", "Injection device ID (backend-specific, empty means the default)")
	delay := pflag.Duration("delay", 150*time.Millisecond, "Delay between events")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	logger.Infof(ctx, "starting...")
	keyboard, err := hid.NewKeyboardAuto(ctx, hid.KeyboardConfig{DeviceID: *deviceID})
	assertNoError(err)
	defer keyboard.Close()

	pointer, err := hid.NewPointerAuto(ctx, hid.PointerConfig{DeviceID: *deviceID})
	assertNoError(err)
	defer pointer.Close()

	for _, key := range []types.Key{types.KeyW, types.KeyA, types.KeyS, types.KeyD} {
		logger.Infof(ctx, "tapping the key %d", key)
		assertNoError(keyboard.Press(ctx, key))
		time.Sleep(*delay)
		assertNoError(keyboard.Release(ctx, key))
		time.Sleep(*delay)
	}

	// a 100px square, drawn in 10px steps
	edges := [][2]int{{10, 0}, {0, 10}, {-10, 0}, {0, -10}}
	for _, edge := range edges {
		logger.Infof(ctx, "moving by (%d, %d) x10", edge[0], edge[1])
		for step := 0; step < 10; step++ {
			assertNoError(pointer.Move(ctx, edge[0], edge[1]))
			time.Sleep(*delay / 10)
		}
	}
	assertNoError(pointer.Click(ctx, types.ButtonLeft))
	logger.Infof(ctx, "done")
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
