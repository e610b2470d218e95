// Package monitor drives the wellness monitor: device selection, session
// recording, camera preview and the audio level visualizer. Capture itself
// is provided by the host through the interfaces in this package.
package monitor

import (
	"context"
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned when the host refuses camera or microphone access.
var ErrPermissionDenied = errors.New("camera and microphone permission denied")

// DeviceKind is the media kind reported by the host.
type DeviceKind string

const (
	KindVideoInput DeviceKind = "videoinput"
	KindAudioInput DeviceKind = "audioinput"
)

// Device is a capture device.
type Device struct {
	ID    string
	Kind  DeviceKind
	Label string
}

// DeviceSource enumerates capture devices.
type DeviceSource interface {
	Devices(ctx context.Context) ([]Device, error)
}

// Devices is the device list split by kind.
type Devices struct {
	Cameras     []Device
	Microphones []Device
}

// ListDevices enumerates devices and fills in missing labels.
func ListDevices(ctx context.Context, src DeviceSource) (Devices, error) {
	if src == nil {
		return Devices{}, fmt.Errorf("device source is nil")
	}
	all, err := src.Devices(ctx)
	if err != nil {
		return Devices{}, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	var out Devices
	for _, d := range all {
		switch d.Kind {
		case KindVideoInput:
			if d.Label == "" {
				d.Label = fmt.Sprintf("Camera %d", len(out.Cameras)+1)
			}
			out.Cameras = append(out.Cameras, d)
		case KindAudioInput:
			if d.Label == "" {
				d.Label = fmt.Sprintf("Microphone %d", len(out.Microphones)+1)
			}
			out.Microphones = append(out.Microphones, d)
		}
	}
	return out, nil
}
