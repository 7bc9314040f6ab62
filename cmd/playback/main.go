package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jfreymuth/oggvorbis"
	"github.com/spf13/pflag"

	pamiqaudio "github.com/pamiq/pamiq-io/pkg/audio"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/malgo"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/oto"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/portaudio"
	_ "github.com/pamiq/pamiq-io/pkg/audio/backends/pulseaudio"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	deviceID := pflag.String("device", "", "Output device ID (empty means the default device)")
	pflag.Parse()

	if pflag.NArg() != 1 {
		panic("expected exactly one positional argument: the path of the WAV or Ogg Vorbis file to play")
	}
	filePath := pflag.Arg(0)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	logger.Infof(ctx, "starting...")
	file, err := os.Open(filePath)
	assertNoError(err)
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ogg":
		playVorbis(ctx, *deviceID, file)
	default:
		playWAV(ctx, *deviceID, file)
	}
}

func playVorbis(ctx context.Context, deviceID string, file *os.File) {
	format, err := oggvorbis.GetFormat(file)
	assertNoError(err)
	_, err = file.Seek(0, 0)
	assertNoError(err)

	output, err := pamiqaudio.NewOutputAuto(ctx, pamiqaudio.OutputConfig{
		DeviceID:   deviceID,
		SampleRate: pamiqaudio.SampleRate(format.SampleRate),
		Channels:   pamiqaudio.Channel(format.Channels),
	})
	assertNoError(err)
	defer output.Close()

	logger.Infof(ctx, "playing %dHz %dch vorbis", format.SampleRate, format.Channels)
	assertNoError(output.WriteVorbis(ctx, file))
}

func playWAV(ctx context.Context, deviceID string, file *os.File) {
	dec := wav.NewDecoder(file)
	dec.ReadInfo()
	assertNoError(dec.Err())

	cfg := pamiqaudio.OutputConfig{
		DeviceID:   deviceID,
		SampleRate: pamiqaudio.SampleRate(dec.SampleRate),
		Channels:   pamiqaudio.Channel(dec.NumChans),
	}.WithDefaults()

	output, err := pamiqaudio.NewOutputAuto(ctx, cfg)
	assertNoError(err)
	defer output.Close()

	logger.Infof(ctx, "playing %dHz %dch %d-bit WAV", dec.SampleRate, dec.NumChans, dec.BitDepth)
	scale := float32(int(1) << (dec.BitDepth - 1))
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(dec.NumChans),
			SampleRate:  int(dec.SampleRate),
		},
		Data: make([]int, cfg.BlockSize*int(dec.NumChans)),
	}
	samples := make([]float32, 0, len(buf.Data))
	for {
		n, err := dec.PCMBuffer(buf)
		assertNoError(err)
		if n == 0 {
			break
		}
		samples = samples[:0]
		for _, s := range buf.Data[:n] {
			samples = append(samples, float32(s)/scale)
		}
		assertNoError(output.WriteFrames(ctx, samples))
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
