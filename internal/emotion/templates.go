package emotion

import (
	"strings"
	"text/template"
)

const (
	tplGreeting = "greeting"
	tplPrompt   = "prompt"
	tplSingle   = "single"
	tplMixed    = "mixed"
	tplMultiple = "multi"
)

// fallbackReply is returned if a reply template fails to render.
const fallbackReply = "Thank you for sharing. Could you elaborate a bit more on that?"

var replyTemplatesText = `
{{define "greeting"}}Hello there! It's good to hear from you. How are you feeling today?{{end}}
{{define "prompt"}}Thank you for sharing. Could you elaborate a bit more on that?{{end}}
{{define "single"}}It sounds like you're feeling {{.Tag}}. I'm here to listen.

Here is a suggestion that might help:
- {{.Advice}}{{end}}
{{define "mixed"}}It sounds like you're experiencing some conflicting feelings, like {{join .Tags}}. This is very common, and it's okay to feel a mix of things.

A helpful technique for moments like this is 'mindful observation.' Instead of fighting the feelings, just acknowledge them. You can say to yourself, 'I notice I'm feeling happy about one thing, and also sad about another.' By observing without judgment, you give yourself space to understand this complex emotional state.{{end}}
{{define "multi"}}It sounds like you're dealing with a complex mix of feelings, including {{join .Tags}}. It's perfectly okay to feel multiple things at once. Let's address them.

Here are some individual suggestions that might help:
{{range .Items}}
- For feeling {{.Tag}}: {{.Advice}}{{end}}{{end}}
`

var replyTemplates = template.Must(template.New("replies").Funcs(template.FuncMap{
	"join": func(tags []string) string {
		return strings.Join(tags, " and ")
	},
}).Parse(replyTemplatesText))

type adviceItem struct {
	Tag    string
	Advice string
}

type replyData struct {
	Tag    string
	Advice string
	Tags   []string
	Items  []adviceItem
}
