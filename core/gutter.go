package core

// LineLabel is one gutter entry.
type LineLabel struct {
	Number int // 1-based
	Active bool
}

// LineCount returns the number of lines: one more than the number of newlines.
func LineCount(text []rune) int {
	return lineIndex(text, len(text)) + 1
}

// ActiveLine returns the 1-based line holding the caret.
func ActiveLine(text []rune, caret int) int {
	return lineIndex(text, clamp(caret, 0, len(text))) + 1
}

// Gutter labels every line and flags the one holding the caret.
func Gutter(text []rune, caret int) []LineLabel {
	count := LineCount(text)
	active := ActiveLine(text, caret)

	labels := make([]LineLabel, count)
	for i := range labels {
		labels[i] = LineLabel{Number: i + 1, Active: i+1 == active}
	}
	return labels
}
