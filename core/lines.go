package core

// lineStart returns the offset of the first rune of the line containing offset.
func lineStart(text []rune, offset int) int {
	for i := offset - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEnd returns the offset of the newline ending the line containing offset,
// or len(text) on the last line.
func lineEnd(text []rune, offset int) int {
	for i := offset; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	return len(text)
}

// lineIndex counts the newlines strictly before offset.
func lineIndex(text []rune, offset int) int {
	n := 0
	for _, r := range text[:offset] {
		if r == '\n' {
			n++
		}
	}
	return n
}

func countSpaces(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

// offsetAt returns the offset of col on row, clamped to the line length.
func offsetAt(text []rune, row, col int) (int, bool) {
	if row < 0 {
		return 0, false
	}
	start := 0
	for r := 0; r < row; r++ {
		end := lineEnd(text, start)
		if end == len(text) {
			return 0, false
		}
		start = end + 1
	}
	return min(start+max(col, 0), lineEnd(text, start)), true
}

// Position converts a rune offset into a zero-indexed row and column.
func Position(text []rune, offset int) (row, col int) {
	offset = clamp(offset, 0, len(text))
	return lineIndex(text, offset), offset - lineStart(text, offset)
}
