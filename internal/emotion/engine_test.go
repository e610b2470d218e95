package emotion

import (
	"slices"
	"strings"
	"testing"
)

const elaborationPrompt = "Thank you for sharing. Could you elaborate a bit more on that?"

func TestGenerateReplyNoKeywordsReturnsPrompt(t *testing.T) {
	engine := NewEngine()
	for _, input := range []string{"", "   ", "The weather is fine", "I went to the store"} {
		if got := engine.GenerateReply(input); got != elaborationPrompt {
			t.Fatalf("input %q: expected elaboration prompt, got %q", input, got)
		}
	}
}

func TestGenerateReplyGreeting(t *testing.T) {
	engine := NewEngine()
	want := "Hello there! It's good to hear from you. How are you feeling today?"
	for _, input := range []string{"hello there", "Hi", "HELLO"} {
		if got := engine.GenerateReply(input); got != want {
			t.Fatalf("input %q: expected greeting, got %q", input, got)
		}
	}
}

func TestGenerateReplySingleEmotion(t *testing.T) {
	engine := NewEngine()
	got := engine.GenerateReply("I feel sad today")

	want := "It sounds like you're feeling sad. I'm here to listen.\n\n" +
		"Here is a suggestion that might help:\n- " + defaultTable[0].Advice
	if got != want {
		t.Fatalf("unexpected reply:\n%s", got)
	}
}

func TestGenerateReplyDedupsByTag(t *testing.T) {
	engine := NewEngine()
	resp := engine.Respond("I'm angry and frustrated with this")

	if resp.Kind != ReplySingle {
		t.Fatalf("expected single reply, got %s", resp.Kind)
	}
	if !slices.Equal(resp.Detected, Detection{TagAngry}) {
		t.Fatalf("expected only angry, got %v", resp.Detected)
	}
	if !strings.Contains(resp.Text, "feeling angry") {
		t.Fatalf("expected reply to name angry, got %q", resp.Text)
	}
}

func TestGenerateReplyMixedFeelings(t *testing.T) {
	engine := NewEngine()
	resp := engine.Respond("I'm happy but also sad")

	if resp.Kind != ReplyMixed {
		t.Fatalf("expected mixed reply, got %s", resp.Kind)
	}
	if !strings.HasPrefix(resp.Text, "It sounds like you're experiencing some conflicting feelings, like sad and happy.") {
		t.Fatalf("unexpected mixed reply: %q", resp.Text)
	}
	if !strings.Contains(resp.Text, "'mindful observation.'") {
		t.Fatalf("expected mindful observation suggestion, got %q", resp.Text)
	}
}

func TestGenerateReplySamePolarityListsAdvice(t *testing.T) {
	engine := NewEngine()
	resp := engine.Respond("I'm scared and sad")

	if resp.Kind != ReplyMultiple {
		t.Fatalf("expected multi reply, got %s", resp.Kind)
	}
	want := "It sounds like you're dealing with a complex mix of feelings, including sad and fear. " +
		"It's perfectly okay to feel multiple things at once. Let's address them.\n\n" +
		"Here are some individual suggestions that might help:\n" +
		"\n- For feeling sad: " + defaultTable[0].Advice +
		"\n- For feeling fear: " + defaultTable[3].Advice
	if resp.Text != want {
		t.Fatalf("unexpected multi reply:\n%s", resp.Text)
	}
}

func TestGenerateReplyPositiveOnly(t *testing.T) {
	engine := NewEngine()
	resp := engine.Respond("Wow, I'm so excited")

	if resp.Kind != ReplyMultiple {
		t.Fatalf("expected multi reply, got %s", resp.Kind)
	}
	if !slices.Equal(resp.Detected, Detection{TagSurprised, TagHappy}) {
		t.Fatalf("unexpected detection: %v", resp.Detected)
	}
}

func TestGenerateReplyCaseInsensitive(t *testing.T) {
	engine := NewEngine()
	if engine.GenerateReply("SAD") != engine.GenerateReply("sad") {
		t.Fatalf("expected identical replies for SAD and sad")
	}
}

func TestDetectUsesSubstrings(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		input string
		want  Detection
	}{
		{"I feel disgusted", Detection{TagDisgust}},
		{"still downloading the update", Detection{TagSad}},
		{"that was PISSED OFF level", Detection{TagAngry}},
		{"nothing here", Detection{}},
	}
	for _, tc := range cases {
		if got := engine.Detect(tc.input); !slices.Equal(got, tc.want) {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestGreetingMatchesInsideWords(t *testing.T) {
	engine := NewEngine()
	resp := engine.Respond("this is a test")
	if resp.Kind != ReplyGreeting {
		t.Fatalf("expected greeting for substring hi, got %s", resp.Kind)
	}
}

func TestNewEngineWithTableLowercasesKeywords(t *testing.T) {
	engine := NewEngineWithTable([]Entry{
		{Tag: "calm", Keywords: []string{"Peaceful"}, Advice: "Enjoy it."},
		{Tag: TagSad, Keywords: []string{"Blue"}, Advice: "Be gentle with yourself."},
	})

	resp := engine.Respond("feeling peaceful but a bit BLUE")
	if resp.Kind != ReplyMultiple {
		t.Fatalf("expected multi reply for unpolarized tag, got %s", resp.Kind)
	}
	if !strings.Contains(resp.Text, "- For feeling calm: Enjoy it.") {
		t.Fatalf("expected calm advice, got %q", resp.Text)
	}
}

func TestDefaultTableIsACopy(t *testing.T) {
	table := DefaultTable()
	table[0].Keywords[0] = "changed"
	table[0].Advice = "changed"

	if defaultTable[0].Keywords[0] != "sad" || defaultTable[0].Advice == "changed" {
		t.Fatalf("default table was mutated through copy")
	}
}

func TestOrderFollowsTable(t *testing.T) {
	tags := Tags()
	want := []Tag{TagSad, TagAngry, TagSurprised, TagFear, TagHappy, TagDisgust}
	if !slices.Equal(tags, want) {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if Order(TagFear) != 3 || Order("calm") != -1 {
		t.Fatalf("unexpected order lookup")
	}
}
