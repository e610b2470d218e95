// Package emotion maps free-form user text to emotion tags and canned advice.
package emotion

// Tag names one emotion the engine can detect.
type Tag string

const (
	TagSad       Tag = "sad"
	TagAngry     Tag = "angry"
	TagSurprised Tag = "surprised"
	TagFear      Tag = "fear"
	TagHappy     Tag = "happy"
	TagDisgust   Tag = "disgust"
)

// Polarity groups tags for the mixed-feelings check.
type Polarity int

const (
	PolarityNone Polarity = iota
	PolarityPositive
	PolarityNegative
)

// Polarity returns the polarity group of t.
func (t Tag) Polarity() Polarity {
	switch t {
	case TagHappy, TagSurprised:
		return PolarityPositive
	case TagSad, TagAngry, TagFear, TagDisgust:
		return PolarityNegative
	default:
		return PolarityNone
	}
}

// Entry is one row of the keyword table.
type Entry struct {
	Tag Tag
	// Keywords are lowercase substrings; any hit marks the entry as detected.
	Keywords []string
	Advice   string
}

// Detection lists detected tags in table order, one per tag.
type Detection []Tag

// Strings returns the tag names.
func (d Detection) Strings() []string {
	out := make([]string, len(d))
	for i, tag := range d {
		out[i] = string(tag)
	}
	return out
}

// Mixed reports whether d holds at least one positive and one negative tag.
func (d Detection) Mixed() bool {
	var positive, negative bool
	for _, tag := range d {
		switch tag.Polarity() {
		case PolarityPositive:
			positive = true
		case PolarityNegative:
			negative = true
		}
	}
	return positive && negative
}

// ReplyKind identifies which branch produced a reply.
type ReplyKind string

const (
	ReplyGreeting ReplyKind = "greeting"
	ReplyPrompt   ReplyKind = "prompt"
	ReplySingle   ReplyKind = "single"
	ReplyMixed    ReplyKind = "mixed"
	ReplyMultiple ReplyKind = "multi"
)

// Response is a generated reply together with what triggered it.
type Response struct {
	Kind     ReplyKind
	Detected Detection
	Text     string
}
