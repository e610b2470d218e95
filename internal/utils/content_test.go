package utils

import (
	"testing"

	"google.golang.org/genai"
)

func TestExtractContentText(t *testing.T) {
	content := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			genai.NewPartFromText("I feel sad"),
			nil,
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
			{Text: "planning a comforting reply", Thought: true},
			genai.NewPartFromText("   "),
			genai.NewPartFromText("and lonely"),
		},
	}
	if got := ExtractContentText(content); got != "I feel sad\nand lonely" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ExtractContentText(nil); got != "" {
		t.Fatalf("expected empty text for nil content, got %q", got)
	}
}
