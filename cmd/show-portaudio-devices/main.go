package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"

	"github.com/pamiq/pamiq-io/pkg/audio/backends/portaudio"
)

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	devices, err := portaudio.Devices(ctx)
	if err != nil {
		logger.Errorf(ctx, "unable to enumerate the devices: %v", err)
		os.Exit(1)
	}
	for _, d := range devices {
		fmt.Println(d.String())
	}
}
