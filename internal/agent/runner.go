package agent

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/wellness-companion/internal/utils"
)

type companionRunner interface {
	Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error]
}

// Conversation runs the companion agent in-process with in-memory sessions.
type Conversation struct {
	appName        string
	runner         companionRunner
	sessionService session.Service
}

// NewConversation wraps a companion agent in an ADK runner.
func NewConversation(appName string, a agent.Agent) (*Conversation, error) {
	if a == nil {
		return nil, fmt.Errorf("agent is required")
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          a,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion runner: %w", err)
	}

	return &Conversation{
		appName:        appName,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

// Send delivers one user message and returns the companion's replies.
// The session is created on first use.
func (c *Conversation) Send(ctx context.Context, userID, sessionID, text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	if err := c.ensureSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	msg := genai.NewContentFromText(trimmed, genai.RoleUser)
	events := c.runner.Run(ctx, userID, sessionID, msg, agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	})

	var replies []string
	for event, err := range events {
		if err != nil {
			return replies, err
		}
		if event == nil || event.Content == nil {
			continue
		}
		if event.Author == "user" {
			continue
		}
		reply := strings.TrimSpace(utils.ExtractContentText(event.Content))
		if reply == "" {
			continue
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

func (c *Conversation) ensureSession(ctx context.Context, userID, sessionID string) error {
	if _, err := c.sessionService.Get(ctx, &session.GetRequest{
		AppName:   c.appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err == nil {
		return nil
	}
	if _, err := c.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   c.appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		return fmt.Errorf("failed to create companion session: %w", err)
	}
	return nil
}
