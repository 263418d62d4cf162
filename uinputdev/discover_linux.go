//go:build linux

package uinputdev

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
)

// Device is an input event device node.
type Device struct {
	Name string
	Path string
}

// FindDevices lists the event devices whose name is one of names.
func FindDevices(names ...string) ([]Device, error) {
	devFiles, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var devices []Device
	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}
		name := dev.Name
		_ = dev.File.Close()

		for _, wanted := range names {
			if name == wanted {
				devices = append(devices, Device{Name: name, Path: path})
				break
			}
		}
	}
	return devices, nil
}

// WaitForDevice polls until an event device called name exists. Input
// sent to a fresh uinput device before the system has opened it is lost.
func WaitForDevice(ctx context.Context, name string, poll time.Duration) (Device, error) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		devices, err := FindDevices(name)
		if err != nil {
			return Device{}, err
		}
		if len(devices) > 0 {
			return devices[0], nil
		}
		select {
		case <-ctx.Done():
			return Device{}, fmt.Errorf("waiting for input device %q: %w", name, ctx.Err())
		case <-ticker.C:
		}
	}
}
