package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/easeaico/wellness-companion/internal/types"
)

// ErrNoDevice is returned when recording starts without a selected device.
var ErrNoDevice = errors.New("no capture device selected")

// Selection is the camera and microphone chosen by the user.
type Selection struct {
	CameraID     string
	MicrophoneID string
}

// Stream is an active recording.
type Stream interface {
	SetAudioEnabled(enabled bool)
	// Stop ends capture and returns the finished recording.
	Stop(ctx context.Context) (types.Recording, error)
}

// Recorder starts session recordings.
type Recorder interface {
	Start(ctx context.Context, sel Selection) (Stream, error)
}

// Preview is an open camera preview.
type Preview interface {
	Close() error
}

// Previewer opens camera previews.
type Previewer interface {
	StartPreview(ctx context.Context, cameraID string) (Preview, error)
}

// RecordingSink receives finished recordings and returns chat messages for them.
type RecordingSink interface {
	HandleRecording(ctx context.Context, rec types.Recording) []types.Message
}

// Monitor tracks the recording and preview state of one wellness monitor.
type Monitor struct {
	mu           sync.Mutex
	recorder     Recorder
	previewer    Previewer
	sink         RecordingSink
	selection    Selection
	stream       Stream
	preview      Preview
	audioEnabled bool
}

// New returns an idle Monitor. previewer and sink may be nil.
func New(recorder Recorder, previewer Previewer, sink RecordingSink) *Monitor {
	return &Monitor{
		recorder:     recorder,
		previewer:    previewer,
		sink:         sink,
		audioEnabled: true,
	}
}

// Select sets the capture devices. A running preview is reopened on the new camera.
func (m *Monitor) Select(ctx context.Context, sel Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := sel.CameraID != m.selection.CameraID
	m.selection = sel
	if changed && m.preview != nil {
		if err := m.closePreviewLocked(); err != nil {
			return err
		}
		return m.openPreviewLocked(ctx)
	}
	return nil
}

// Recording reports whether a session is being recorded.
func (m *Monitor) Recording() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stream != nil
}

// Previewing reports whether a camera preview is open.
func (m *Monitor) Previewing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preview != nil
}

// Start begins recording. Any open preview is closed first.
// Starting while already recording is a no-op.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startLocked(ctx)
}

// Stop ends the recording and returns the chat messages for it.
// Stopping while idle returns no messages.
func (m *Monitor) Stop(ctx context.Context) ([]types.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked(ctx)
}

// Toggle starts an idle monitor or stops a recording one.
func (m *Monitor) Toggle(ctx context.Context) ([]types.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream != nil {
		return m.stopLocked(ctx)
	}
	return nil, m.startLocked(ctx)
}

// TogglePreview opens the camera preview, or closes it if open.
func (m *Monitor) TogglePreview(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.preview != nil {
		return m.closePreviewLocked()
	}
	return m.openPreviewLocked(ctx)
}

// SetAudioEnabled mutes or unmutes the microphone of the current and later recordings.
func (m *Monitor) SetAudioEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audioEnabled = enabled
	if m.stream != nil {
		m.stream.SetAudioEnabled(enabled)
	}
}

func (m *Monitor) startLocked(ctx context.Context) error {
	if m.stream != nil {
		return nil
	}
	if m.recorder == nil {
		return fmt.Errorf("recorder is nil")
	}
	if m.selection.CameraID == "" || m.selection.MicrophoneID == "" {
		return ErrNoDevice
	}
	if m.preview != nil {
		if err := m.closePreviewLocked(); err != nil {
			slog.Warn("failed to close preview before recording", "error", err.Error())
		}
	}

	stream, err := m.recorder.Start(ctx, m.selection)
	if err != nil {
		return fmt.Errorf("failed to start recording: %w", err)
	}
	stream.SetAudioEnabled(m.audioEnabled)
	m.stream = stream
	slog.Info("monitor recording started", "camera", m.selection.CameraID, "microphone", m.selection.MicrophoneID)
	return nil
}

func (m *Monitor) stopLocked(ctx context.Context) ([]types.Message, error) {
	if m.stream == nil {
		return nil, nil
	}
	stream := m.stream
	m.stream = nil

	rec, err := stream.Stop(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stop recording: %w", err)
	}
	slog.Info("monitor recording stopped", "path", rec.Path)
	if m.sink == nil {
		return nil, nil
	}
	return m.sink.HandleRecording(ctx, rec), nil
}

func (m *Monitor) openPreviewLocked(ctx context.Context) error {
	if m.previewer == nil {
		return fmt.Errorf("previewer is nil")
	}
	if m.selection.CameraID == "" {
		return ErrNoDevice
	}
	preview, err := m.previewer.StartPreview(ctx, m.selection.CameraID)
	if err != nil {
		return fmt.Errorf("failed to start preview: %w", err)
	}
	m.preview = preview
	return nil
}

func (m *Monitor) closePreviewLocked() error {
	preview := m.preview
	m.preview = nil
	if err := preview.Close(); err != nil {
		return fmt.Errorf("failed to close preview: %w", err)
	}
	return nil
}
