package callback

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/utils"
)

const (
	moodLevelLow    = "Low"
	moodLevelUneasy = "Uneasy"
	moodLevelSteady = "Steady"
	moodLevelBright = "Bright"
)

// NewDetectionStateCallback records the tags detected in the user's message
// and moves the session mood score by their polarity.
func NewDetectionStateCallback(engine *emotion.Engine) agent.BeforeAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		userText := strings.TrimSpace(utils.ExtractContentText(ctx.UserContent()))
		if userText == "" {
			return nil, nil
		}
		if err := applyDetection(ctx.State(), engine.Detect(userText)); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// NewTurnLogCallback logs the session's running emotional summary.
func NewTurnLogCallback() agent.AfterAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		state := ctx.State()
		turns, err := readIntState(state, StateTurns)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", StateTurns, err)
		}
		level, _ := state.Get(StateMoodLevel)
		emotions, _ := state.Get(StateLastEmotions)
		slog.Info("companion turn completed", "session", ctx.SessionID(), "turns", turns, "mood_level", level, "emotions", emotions)
		return nil, nil
	}
}

func applyDetection(state session.State, detected emotion.Detection) error {
	turns, err := readIntState(state, StateTurns)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", StateTurns, err)
	}
	if err := state.Set(StateTurns, turns+1); err != nil {
		return fmt.Errorf("failed to set %s: %w", StateTurns, err)
	}
	if err := state.Set(StateLastEmotions, detected.Strings()); err != nil {
		return fmt.Errorf("failed to set %s: %w", StateLastEmotions, err)
	}

	delta := moodScoreDelta(detected)
	if delta == 0 {
		return nil
	}
	score, err := readIntState(state, StateMoodScore)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", StateMoodScore, err)
	}
	newScore := score + delta
	if err := state.Set(StateMoodScore, newScore); err != nil {
		return fmt.Errorf("failed to set %s: %w", StateMoodScore, err)
	}
	if err := state.Set(StateMoodLevel, mapMoodLevel(newScore)); err != nil {
		return fmt.Errorf("failed to set %s: %w", StateMoodLevel, err)
	}
	return nil
}

func moodScoreDelta(detected emotion.Detection) int {
	delta := 0
	for _, tag := range detected {
		switch tag.Polarity() {
		case emotion.PolarityPositive:
			delta++
		case emotion.PolarityNegative:
			delta--
		}
	}
	return delta
}

func mapMoodLevel(score int) string {
	switch {
	case score <= -4:
		return moodLevelLow
	case score <= -2:
		return moodLevelUneasy
	case score <= 2:
		return moodLevelSteady
	default:
		return moodLevelBright
	}
}

func readIntState(state session.State, key string) (int, error) {
	val, err := state.Get(key)
	if err != nil {
		if errors.Is(err, session.ErrStateKeyNotExist) {
			return 0, nil
		}
		return 0, err
	}
	switch cast := val.(type) {
	case int:
		return cast, nil
	case int32:
		return int(cast), nil
	case int64:
		return int(cast), nil
	case float32:
		return int(cast), nil
	case float64:
		return int(cast), nil
	case json.Number:
		parsed, err := cast.Int64()
		if err != nil {
			return 0, fmt.Errorf("state value for %s is not an int: %w", key, err)
		}
		return int(parsed), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(cast))
		if err != nil {
			return 0, fmt.Errorf("state value for %s is not an int: %w", key, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("state value for %s has unsupported type %T", key, val)
	}
}
