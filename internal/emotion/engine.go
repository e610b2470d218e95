package emotion

import (
	"bytes"
	"log/slog"
	"strings"
)

// Engine turns user text into a canned supportive reply.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	entries []Entry
}

// NewEngine returns an Engine backed by the built-in keyword table.
func NewEngine() *Engine {
	return &Engine{entries: DefaultTable()}
}

// NewEngineWithTable returns an Engine backed by a copy of entries.
// Keywords are lowercased so matching stays case-insensitive.
func NewEngineWithTable(entries []Entry) *Engine {
	table := cloneTable(entries)
	for i := range table {
		for j, keyword := range table[i].Keywords {
			table[i].Keywords[j] = strings.ToLower(keyword)
		}
	}
	return &Engine{entries: table}
}

// Detect returns the tags whose keywords occur in text.
// Matching is substring based, so "download" also hits "down".
func (e *Engine) Detect(text string) Detection {
	return tagsOf(e.match(strings.ToLower(text)))
}

// GenerateReply returns the bot reply for text. It never fails.
func (e *Engine) GenerateReply(text string) string {
	return e.Respond(text).Text
}

// Respond classifies text and renders the matching reply.
func (e *Engine) Respond(text string) Response {
	normalized := strings.ToLower(text)
	matched := e.match(normalized)
	detected := tagsOf(matched)

	switch {
	case len(matched) == 0:
		if strings.Contains(normalized, "hello") || strings.Contains(normalized, "hi") {
			return Response{Kind: ReplyGreeting, Detected: detected, Text: render(tplGreeting, replyData{})}
		}
		return Response{Kind: ReplyPrompt, Detected: detected, Text: render(tplPrompt, replyData{})}
	case len(matched) == 1:
		data := replyData{Tag: string(matched[0].Tag), Advice: matched[0].Advice}
		return Response{Kind: ReplySingle, Detected: detected, Text: render(tplSingle, data)}
	case detected.Mixed():
		data := replyData{Tags: detected.Strings()}
		return Response{Kind: ReplyMixed, Detected: detected, Text: render(tplMixed, data)}
	default:
		data := replyData{Tags: detected.Strings()}
		for _, entry := range matched {
			data.Items = append(data.Items, adviceItem{Tag: string(entry.Tag), Advice: entry.Advice})
		}
		return Response{Kind: ReplyMultiple, Detected: detected, Text: render(tplMultiple, data)}
	}
}

func (e *Engine) match(normalized string) []Entry {
	var matched []Entry
	for _, entry := range e.entries {
		for _, keyword := range entry.Keywords {
			if keyword != "" && strings.Contains(normalized, keyword) {
				matched = append(matched, entry)
				break
			}
		}
	}
	return matched
}

func tagsOf(entries []Entry) Detection {
	detected := make(Detection, len(entries))
	for i, entry := range entries {
		detected[i] = entry.Tag
	}
	return detected
}

func render(name string, data replyData) string {
	var buf bytes.Buffer
	if err := replyTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to execute reply template", "template", name, "error", err.Error())
		return fallbackReply
	}
	return buf.String()
}
