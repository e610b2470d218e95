// Package callback holds ADK agent callbacks for the companion agent.
package callback

import (
	"log/slog"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"
)

type callbackFunc = func(agent.CallbackContext) (*genai.Content, error)

// WrapBeforeCallback logs cb under name and turns a panic into a no-op.
func WrapBeforeCallback(name string, cb agent.BeforeAgentCallback) agent.BeforeAgentCallback {
	return guard("before", name, cb)
}

// WrapAfterCallback is WrapBeforeCallback for after-agent callbacks.
func WrapAfterCallback(name string, cb agent.AfterAgentCallback) agent.AfterAgentCallback {
	return guard("after", name, cb)
}

func guard(stage, name string, cb callbackFunc) callbackFunc {
	return func(ctx agent.CallbackContext) (content *genai.Content, err error) {
		logger := slog.With("stage", stage, "callback", name)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("callback panic", "panic", r)
				content, err = nil, nil
			}
		}()

		content, err = cb(ctx)
		if err != nil {
			logger.Error("callback failed", "error", err.Error())
			return content, err
		}
		logger.Debug("callback done", "has_content", content != nil)
		return content, nil
	}
}
