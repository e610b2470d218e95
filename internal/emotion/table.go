package emotion

import "slices"

var defaultTable = []Entry{
	{
		Tag:      TagSad,
		Keywords: []string{"sad", "depressed", "unhappy", "down", "crying", "miserable", "lonely"},
		Advice:   "For sadness, acknowledging the feeling is a healthy first step. You could try some gentle self-care, like listening to calming music, or perhaps writing down your thoughts.",
	},
	{
		Tag:      TagAngry,
		Keywords: []string{"angry", "mad", "furious", "irritated", "annoyed", "pissed off", "frustrated"},
		Advice:   "To counter anger, it's helpful to find a healthy outlet. Taking a step back to breathe deeply, going for a short walk, or even listening to intense music can help process that energy.",
	},
	{
		Tag:      TagSurprised,
		Keywords: []string{"surprised", "shocked", "amazed", "wow", "unbelievable", "no way", "startled"},
		Advice:   "Surprise can be a lot to take in! Give yourself a moment to just sit with the feeling and let it settle. Acknowledging the unexpected helps in processing it.",
	},
	{
		Tag:      TagFear,
		Keywords: []string{"scared", "afraid", "fearful", "terrified", "anxious", "worried", "nervous"},
		Advice:   "When feeling fear or anxiety, grounding techniques can be very effective. Try the 5-4-3-2-1 method: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
	},
	{
		Tag:      TagHappy,
		Keywords: []string{"happy", "excited", "great", "joyful", "thrilled", "elated", "fantastic"},
		Advice:   "It's wonderful that you're feeling happy! A great way to savor this feeling is to share it with someone or to take a moment to practice gratitude. Think of three things you're thankful for right now.",
	},
	{
		Tag:      TagDisgust,
		Keywords: []string{"disgusted", "gross", "revolted", "sickened", "repulsed", "awful"},
		Advice:   "Disgust is a strong protective emotion. It can be helpful to create some distance from what's causing it. Shifting your focus to something pleasant, like a nice scent or a beautiful image, can help reset your state of mind.",
	},
}

// DefaultTable returns a copy of the built-in keyword table.
func DefaultTable() []Entry {
	return cloneTable(defaultTable)
}

// Tags returns the tags of the built-in table in table order.
func Tags() []Tag {
	tags := make([]Tag, len(defaultTable))
	for i, entry := range defaultTable {
		tags[i] = entry.Tag
	}
	return tags
}

// Order returns the position of tag in the built-in table, or -1.
func Order(tag Tag) int {
	for i, entry := range defaultTable {
		if entry.Tag == tag {
			return i
		}
	}
	return -1
}

func cloneTable(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, entry := range entries {
		out[i] = Entry{
			Tag:      entry.Tag,
			Keywords: slices.Clone(entry.Keywords),
			Advice:   entry.Advice,
		}
	}
	return out
}
