package model

// Pattern is a suspicious transaction shape tag.
type Pattern string

const (
	PatternSmurfing Pattern = "smurfing"
	PatternLayering Pattern = "layering"
	PatternMixer    Pattern = "mixer"
)

// Tagged reports whether the transaction already carries pattern tags.
func (t Transaction) Tagged() bool {
	return len(t.Patterns) > 0
}
