// Package agent provides agent initialization.
package agent

import (
	"context"
	"fmt"
	"iter"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/wellness-companion/internal/callback"
	"github.com/easeaico/wellness-companion/internal/chat"
	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/types"
	"github.com/easeaico/wellness-companion/internal/utils"
)

const (
	// CompanionAgentName is the ADK agent name and event author.
	CompanionAgentName        = "wellness_companion"
	companionAgentDescription = "Listens to how the user feels and answers with supportive advice."
)

type companion struct {
	handler *chat.Handler
}

// NewCompanionAgent builds the keyword-driven companion agent.
func NewCompanionAgent(handler *chat.Handler, engine *emotion.Engine) (agent.Agent, error) {
	if handler == nil || engine == nil {
		return nil, fmt.Errorf("chat handler and engine are required")
	}
	c := &companion{handler: handler}

	a, err := agent.New(agent.Config{
		Name:        CompanionAgentName,
		Description: companionAgentDescription,
		Run:         c.run,
		BeforeAgentCallbacks: []agent.BeforeAgentCallback{
			callback.WrapBeforeCallback("session_state", callback.EnsureSessionStateCallback()),
			callback.WrapBeforeCallback("detection_state", callback.NewDetectionStateCallback(engine)),
		},
		AfterAgentCallbacks: []agent.AfterAgentCallback{
			callback.WrapAfterCallback("turn_log", callback.NewTurnLogCallback()),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion agent: %w", err)
	}
	return a, nil
}

func (c *companion) run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		text := utils.ExtractContentText(ctx.UserContent())
		for _, msg := range c.handler.HandleText(ctx, text) {
			if msg.Sender != types.SenderBot {
				continue
			}
			if err := wait(ctx, msg.Delay); err != nil {
				yield(nil, err)
				return
			}
			event := session.NewEvent(ctx.InvocationID())
			event.Author = CompanionAgentName
			event.LLMResponse.Content = genai.NewContentFromText(msg.Text, genai.RoleModel)
			if !yield(event, nil) {
				return
			}
		}
	}
}

// wait pauses for the display delay of a reply.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
