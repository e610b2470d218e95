package callback

import (
	"errors"
	"log/slog"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// Session state keys written by the companion callbacks.
const (
	StateStartedAt    = "StartedAt"
	StateTurns        = "Turns"
	StateLastEmotions = "LastEmotions"
	StateMoodScore    = "MoodScore"
	StateMoodLevel    = "MoodLevel"
)

// EnsureSessionStateCallback seeds the session state on the first turn.
func EnsureSessionStateCallback() agent.BeforeAgentCallback {
	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		state := cbCtx.State()
		if state == nil {
			slog.Warn("session state is nil, skipping state initialization")
			return nil, nil
		}
		seedState(state, time.Now())
		return nil, nil
	}
}

func seedState(state session.State, now time.Time) {
	ensureStateValue(state, StateStartedAt, now.Format(time.RFC3339))
	ensureStateValue(state, StateTurns, 0)
	ensureStateValue(state, StateLastEmotions, []string{})
	ensureStateValue(state, StateMoodScore, 0)
	ensureStateValue(state, StateMoodLevel, moodLevelSteady)
}

func ensureStateValue(state session.State, key string, value any) {
	if value == nil {
		return
	}
	_, err := state.Get(key)
	if err == nil {
		return
	}
	if !errors.Is(err, session.ErrStateKeyNotExist) {
		slog.Warn("failed to check session state key", "key", key, "error", err.Error())
		return
	}
	if err := state.Set(key, value); err != nil {
		// State writes never block a reply.
		slog.Warn("failed to set session state", "key", key, "error", err.Error())
	}
}
