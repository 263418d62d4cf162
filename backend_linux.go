//go:build linux

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/config"
	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
	"github.com/goKeyStuffer/uinputdev"
)

// deviceSettle is how long to wait for the desktop to pick up the new
// virtual keyboard before typing into it.
const deviceSettle = time.Second

func hostLayout() (layout.Translator, layout.LayoutSource, error) {
	return nil, nil, fmt.Errorf("%w: reading the active layout", input.ErrUnsupported)
}

func hostLayouts() ([]layout.LayoutID, error) {
	return nil, fmt.Errorf("%w: listing installed layouts", input.ErrUnsupported)
}

func registerMessage(string) (input.WindowMessage, error) {
	return 0, fmt.Errorf("%w: window messages", input.ErrUnsupported)
}

func openInjector(
	ctx context.Context, conf config.Config, desc *keymaps.Description, logger logrus.FieldLogger,
) (input.Injector, func() error, error) {
	inj, err := uinputdev.New(ctx, uinputdev.Options{
		Path:   conf.UinputPath.String,
		Name:   conf.DeviceName.String,
		Layout: desc,
		Settle: deviceSettle,
		Logger: logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return inj, inj.Close, nil
}
