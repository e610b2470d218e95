package types

import "time"

// Sender identifies who a chat message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one chat bubble handed to the renderer.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	// Attachment is a media path shown below the text, e.g. a session recording.
	Attachment string `json:"attachment,omitempty"`
	// Delay is how long the renderer waits before showing the message.
	Delay time.Duration `json:"delay,omitempty"`
}

// Recording describes a finished monitor session capture.
type Recording struct {
	Path       string        `json:"path"`
	MimeType   string        `json:"mime_type"`
	Duration   time.Duration `json:"duration"`
	SampleRate int           `json:"sample_rate,omitempty"`
	Channels   int           `json:"channels,omitempty"`
	// Peak is the loudest absolute sample, normalized to [0,1].
	Peak float64 `json:"peak,omitempty"`
}

// DetectionStat is the aggregate count for one emotion tag.
type DetectionStat struct {
	Tag        string    `json:"tag"`
	Hits       int64     `json:"hits"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
