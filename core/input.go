package core

// handleInput is the plain text input path for keys the editing policy does
// not intercept: typing, single-character deletion and caret motion.
// It reports whether the buffer or selection changed.
func (e *editor) handleInput(key KeyEvent) (bool, error) {
	text := e.buffer.Runes()
	sel := e.buffer.Selection()

	switch key.Key {
	case KeyBackspace:
		if !sel.IsCaret() {
			return e.replace(sel, "")
		}
		if sel.Start == 0 {
			return false, nil
		}
		return e.replace(Selection{Start: sel.Start - 1, End: sel.Start}, "")

	case KeyDelete:
		if !sel.IsCaret() {
			return e.replace(sel, "")
		}
		if sel.End >= len(text) {
			return false, nil
		}
		return e.replace(Selection{Start: sel.Start, End: sel.Start + 1}, "")

	case KeySpace:
		return e.replace(sel, " ")

	case KeyLeft:
		if key.Shift() {
			return e.extendTo(e.head() - 1), nil
		}
		if !sel.IsCaret() {
			return e.moveTo(sel.Start), nil
		}
		return e.moveTo(sel.Start - 1), nil

	case KeyRight:
		if key.Shift() {
			return e.extendTo(e.head() + 1), nil
		}
		if !sel.IsCaret() {
			return e.moveTo(sel.End), nil
		}
		return e.moveTo(sel.End + 1), nil

	case KeyUp, KeyDown:
		dir := 1
		if key.Key == KeyUp {
			dir = -1
		}
		row, col := Position(text, e.head())
		target, ok := offsetAt(text, row+dir, col)
		if !ok {
			return false, nil
		}
		if key.Shift() {
			return e.extendTo(target), nil
		}
		return e.moveTo(target), nil

	case KeyHome, KeyEnd:
		target := lineStart(text, e.head())
		if key.Key == KeyEnd {
			target = lineEnd(text, e.head())
		}
		if key.Shift() {
			return e.extendTo(target), nil
		}
		return e.moveTo(target), nil
	}

	if key.Ctrl() && key.Rune == 'a' {
		before := e.buffer.Selection()
		e.buffer.SetSelection(Selection{Start: 0, End: len(text)})
		e.anchor = 0
		return e.buffer.Selection() != before, nil
	}

	if key.typed() {
		return e.replace(sel, string(key.Rune))
	}

	// Ignore unknown special keys or modifiers without runes
	return false, nil
}

func (e *editor) replace(r Selection, text string) (bool, error) {
	if _, err := e.buffer.Replace(r, text); err != nil {
		return false, err
	}
	e.anchor = e.buffer.Selection().Start
	return true, nil
}

// head is the moving end of the selection.
func (e *editor) head() int {
	sel := e.buffer.Selection()
	if !sel.IsCaret() && e.anchor == sel.Start {
		return sel.End
	}
	return sel.Start
}

func (e *editor) moveTo(offset int) bool {
	before := e.buffer.Selection()
	e.buffer.SetSelection(Caret(offset))
	e.anchor = e.buffer.Selection().Start
	return e.buffer.Selection() != before
}

func (e *editor) extendTo(head int) bool {
	before := e.buffer.Selection()
	if before.IsCaret() || (e.anchor != before.Start && e.anchor != before.End) {
		e.anchor = before.Start
		if !before.IsCaret() && head <= before.Start {
			e.anchor = before.End
		}
	}
	e.buffer.SetSelection(Span(e.anchor, head))
	return e.buffer.Selection() != before
}
