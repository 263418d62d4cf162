//go:build windows

package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/config"
	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
	"github.com/goKeyStuffer/winapi"
)

func hostLayout() (layout.Translator, layout.LayoutSource, error) {
	return winapi.Translator{}, winapi.LayoutSource{}, nil
}

func hostLayouts() ([]layout.LayoutID, error) {
	return winapi.LoadedLayouts()
}

func registerMessage(name string) (input.WindowMessage, error) {
	return winapi.RegisterMessage(name)
}

func openInjector(
	_ context.Context, _ config.Config, _ *keymaps.Description, logger logrus.FieldLogger,
) (input.Injector, func() error, error) {
	inj, err := winapi.NewInjector(logger)
	if err != nil {
		return nil, nil, err
	}
	return inj, func() error { return nil }, nil
}
