// Package utils holds small helpers shared by the agent and callbacks.
package utils

import (
	"strings"

	"google.golang.org/genai"
)

// ExtractContentText joins the visible text parts of content with newlines.
// Model thoughts are skipped.
func ExtractContentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	texts := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part == nil || part.Thought || strings.TrimSpace(part.Text) == "" {
			continue
		}
		texts = append(texts, part.Text)
	}
	return strings.Join(texts, "\n")
}
