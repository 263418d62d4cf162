//go:build !windows && !linux

package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/config"
	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
)

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
	context.Context, config.Config, *keymaps.Description, logrus.FieldLogger,
) (input.Injector, func() error, error) {
	return nil, nil, fmt.Errorf("%w: injecting input on this system", input.ErrUnsupported)
}
