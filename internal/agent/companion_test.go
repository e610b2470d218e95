package agent

import (
	"context"
	"testing"
	"time"

	"github.com/easeaico/wellness-companion/internal/chat"
	"github.com/easeaico/wellness-companion/internal/emotion"
)

func newTestConversation(t *testing.T) *Conversation {
	t.Helper()
	engine := emotion.NewEngine()
	handler := chat.NewHandler(engine, nil, 0, 0)

	a, err := NewCompanionAgent(handler, engine)
	if err != nil {
		t.Fatalf("NewCompanionAgent returned error: %v", err)
	}
	conv, err := NewConversation("wellness_test", a)
	if err != nil {
		t.Fatalf("NewConversation returned error: %v", err)
	}
	return conv
}

func TestConversationRepliesWithEngineText(t *testing.T) {
	conv := newTestConversation(t)
	ctx := context.Background()

	replies, err := conv.Send(ctx, "user-1", "session-1", "I feel sad today")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	want := emotion.NewEngine().GenerateReply("I feel sad today")
	if len(replies) != 1 || replies[0] != want {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies, err = conv.Send(ctx, "user-1", "session-1", "hello there")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if len(replies) != 1 || replies[0] != "Hello there! It's good to hear from you. How are you feeling today?" {
		t.Fatalf("unexpected greeting replies: %#v", replies)
	}
}

func TestConversationIgnoresBlankInput(t *testing.T) {
	conv := newTestConversation(t)

	replies, err := conv.Send(context.Background(), "user-1", "session-1", "   ")
	if err != nil || replies != nil {
		t.Fatalf("expected no replies, got %#v %v", replies, err)
	}
}

func TestNewCompanionAgentRequiresHandler(t *testing.T) {
	if _, err := NewCompanionAgent(nil, emotion.NewEngine()); err == nil {
		t.Fatalf("expected error without handler")
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := wait(ctx, time.Hour); err == nil {
		t.Fatalf("expected cancellation error")
	}
	if err := wait(context.Background(), 0); err != nil {
		t.Fatalf("expected no error for zero delay, got %v", err)
	}
}
