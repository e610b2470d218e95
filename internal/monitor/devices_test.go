package monitor

import (
	"context"
	"errors"
	"testing"
)

type fakeDeviceSource struct {
	devices []Device
	err     error
}

func (f fakeDeviceSource) Devices(ctx context.Context) ([]Device, error) {
	return f.devices, f.err
}

func TestListDevicesSplitsAndLabels(t *testing.T) {
	src := fakeDeviceSource{devices: []Device{
		{ID: "c1", Kind: KindVideoInput, Label: "FaceTime HD"},
		{ID: "m1", Kind: KindAudioInput},
		{ID: "c2", Kind: KindVideoInput},
		{ID: "o1", Kind: "audiooutput", Label: "Speakers"},
		{ID: "m2", Kind: KindAudioInput},
	}}

	got, err := ListDevices(context.Background(), src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.Cameras) != 2 || len(got.Microphones) != 2 {
		t.Fatalf("unexpected split: %+v", got)
	}
	if got.Cameras[0].Label != "FaceTime HD" || got.Cameras[1].Label != "Camera 2" {
		t.Fatalf("unexpected camera labels: %+v", got.Cameras)
	}
	if got.Microphones[0].Label != "Microphone 1" || got.Microphones[1].Label != "Microphone 2" {
		t.Fatalf("unexpected microphone labels: %+v", got.Microphones)
	}
}

func TestListDevicesWrapsPermissionError(t *testing.T) {
	_, err := ListDevices(context.Background(), fakeDeviceSource{err: ErrPermissionDenied})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}
