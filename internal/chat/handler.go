// Package chat turns user input and monitor events into chat messages.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/types"
)

const (
	recordingReceivedText = "Session recording received:"
	analyzingText         = "Analyzing your session for emotional stress indicators..."
)

// StatsRecorder stores aggregate detection counts.
type StatsRecorder interface {
	Increment(ctx context.Context, tags []emotion.Tag) error
}

// Handler produces the messages for one chat turn.
type Handler struct {
	engine        *emotion.Engine
	stats         StatsRecorder
	replyDelay    time.Duration
	analysisDelay time.Duration
}

// NewHandler returns a Handler. stats may be nil.
func NewHandler(engine *emotion.Engine, stats StatsRecorder, replyDelay, analysisDelay time.Duration) *Handler {
	if engine == nil {
		engine = emotion.NewEngine()
	}
	return &Handler{
		engine:        engine,
		stats:         stats,
		replyDelay:    replyDelay,
		analysisDelay: analysisDelay,
	}
}

// HandleText echoes the user's text and appends the bot reply.
// Blank input produces no messages.
func (h *Handler) HandleText(ctx context.Context, raw string) []types.Message {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	resp := h.engine.Respond(text)
	slog.Debug("reply generated", "kind", string(resp.Kind), "detected", resp.Detected.Strings())
	h.record(ctx, resp.Detected)

	return []types.Message{
		{Sender: types.SenderUser, Text: text},
		{Sender: types.SenderBot, Text: resp.Text, Delay: h.replyDelay},
	}
}

// Reply returns only the bot reply for text, or "" for blank input.
func (h *Handler) Reply(ctx context.Context, raw string) string {
	for _, msg := range h.HandleText(ctx, raw) {
		if msg.Sender == types.SenderBot {
			return msg.Text
		}
	}
	return ""
}

// HandleRecording acknowledges a finished monitor session.
func (h *Handler) HandleRecording(ctx context.Context, rec types.Recording) []types.Message {
	slog.Info("session recording received", "path", rec.Path, "duration", rec.Duration.String())
	return []types.Message{
		{Sender: types.SenderUser, Text: recordingReceivedText, Attachment: rec.Path},
		{Sender: types.SenderBot, Text: analyzingText, Delay: h.analysisDelay},
	}
}

func (h *Handler) record(ctx context.Context, detected emotion.Detection) {
	if h.stats == nil || len(detected) == 0 {
		return
	}
	if err := h.stats.Increment(ctx, detected); err != nil {
		slog.Warn("failed to record emotion detections", "error", err.Error())
	}
}
