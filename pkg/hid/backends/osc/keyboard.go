package osc

import (
	"context"

	"github.com/hypebeast/go-osc/osc"

	"github.com/pamiq/pamiq-io/pkg/device"
	"github.com/pamiq/pamiq-io/pkg/hid/types"
)

type Keyboard struct {
	guard  device.Guard
	client *osc.Client
}

var _ types.Keyboard = (*Keyboard)(nil)

func NewKeyboard(
	_ context.Context,
	cfg types.KeyboardConfig,
) (*Keyboard, error) {
	client, err := newClient(cfg.DeviceID)
	if err != nil {
		return nil, err
	}
	return &Keyboard{
		client: client,
	}, nil
}

func (k *Keyboard) Press(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return sendMessage(k.client, "/pamiq-io/keyboard/key", int32(key), true)
	})
}

func (k *Keyboard) Release(ctx context.Context, key types.Key) error {
	return k.guard.Do(func() error {
		return sendMessage(k.client, "/pamiq-io/keyboard/key", int32(key), false)
	})
}

func (k *Keyboard) Tap(ctx context.Context, key types.Key) error {
	if err := k.Press(ctx, key); err != nil {
		return err
	}
	return k.Release(ctx, key)
}

func (k *Keyboard) Close() error {
	return k.guard.Close(func() error { return nil })
}
