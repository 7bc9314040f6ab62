package oto

import (
	"context"

	"github.com/pamiq/pamiq-io/pkg/audio/registry"
	"github.com/pamiq/pamiq-io/pkg/audio/types"
)

const (
	Priority = 50
)

func init() {
	registry.RegisterOutputFactory(Priority, OutputOtoFactory{})
}

type OutputOtoFactory struct{}

func (OutputOtoFactory) NewOutput(ctx context.Context, cfg types.OutputConfig) (types.Output, error) {
	return NewOutput(ctx, cfg)
}
