// Package speech adapts external speech-to-text providers.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrEmptyTranscript is returned when the provider hears nothing.
var ErrEmptyTranscript = errors.New("empty transcript")

// Transcriber turns a recorded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// OpenAITranscriber uses the OpenAI audio transcription endpoint.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

// NewOpenAITranscriber creates a transcriber. Extra options are passed to the client.
func NewOpenAITranscriber(apiKey, model string, opts ...option.RequestOption) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &OpenAITranscriber{
		client: &client,
		model:  model,
	}, nil
}

// Transcribe uploads the file at path and returns the trimmed transcript.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	resp, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(t.model),
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	slog.Debug("transcribed audio", "path", path, "chars", len(text))
	return text, nil
}
