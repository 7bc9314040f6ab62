package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/observability"

	pamiqaudio "github.com/pamiq/pamiq-io/pkg/audio"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/malgo"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/portaudio"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/pulseaudio"
	"github.com/pamiq/pamiq-io/pkg/device"
)

const wavBitDepth = 16

// countingWriteSeeker counts the bytes going into the WAV file while
// still satisfying the encoder's seeking needs.
type countingWriteSeeker struct {
	*datacounter.WriterCounter
	file *os.File
}

func (w *countingWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	return w.file.Seek(offset, whence)
}

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	pflag.String("device", "", "Capture device ID (empty means the default device)")
	pflag.Uint("sample-rate", 0, "Sample rate in Hz")
	pflag.Uint16("channels", 0, "Channel count")
	pflag.Duration("duration", 10*time.Second, "How long to record")
	pflag.Parse()

	viper.SetDefault("sample-rate", uint(pamiqaudio.DefaultSampleRate))
	viper.SetDefault("channels", uint16(pamiqaudio.DefaultCaptureChannels))
	viper.SetEnvPrefix("PAMIQ_IO")
	viper.AutomaticEnv()
	assertNoError(viper.BindPFlags(pflag.CommandLine))

	if pflag.NArg() != 1 {
		panic("expected exactly one positional argument: the path of the WAV file to write")
	}
	filePath := pflag.Arg(0)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	cfg := pamiqaudio.CaptureConfig{
		DeviceID:   viper.GetString("device"),
		SampleRate: pamiqaudio.SampleRate(viper.GetUint("sample-rate")),
		Channels:   pamiqaudio.Channel(viper.GetUint16("channels")),
	}.WithDefaults()

	logger.Infof(ctx, "starting...")
	capture, err := pamiqaudio.NewCaptureAuto(ctx, cfg)
	assertNoError(err)
	defer capture.Close()

	file, err := os.Create(filePath)
	assertNoError(err)
	defer file.Close()

	ws := &countingWriteSeeker{
		WriterCounter: datacounter.NewWriterCounter(file),
		file:          file,
	}
	enc := wav.NewEncoder(ws, int(cfg.SampleRate), wavBitDepth, int(cfg.Channels), 1)

	observability.Go(ctx, func(ctx context.Context) {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Debugf(ctx, "written: %d bytes", ws.Count())
			}
		}
	})

	deadline := time.Now().Add(viper.GetDuration("duration"))
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(cfg.Channels),
			SampleRate:  int(cfg.SampleRate),
		},
		SourceBitDepth: wavBitDepth,
	}
	for time.Now().Before(deadline) {
		samples, err := capture.ReadFrames(ctx, cfg.BlockSize)
		if errors.Is(err, device.ErrInsufficientData) || errors.Is(err, io.EOF) {
			logger.Infof(ctx, "the capture stream ended: %v", err)
			break
		}
		assertNoError(err)
		buf.Data = toInt16(samples, buf.Data)
		assertNoError(enc.Write(buf))
	}

	assertNoError(enc.Close())
	logger.Infof(ctx, "recorded %d bytes into '%s'", ws.Count(), filePath)
}

func toInt16(samples []float32, reuse []int) []int {
	result := reuse[:0]
	for _, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		result = append(result, int(s*32767))
	}
	return result
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
