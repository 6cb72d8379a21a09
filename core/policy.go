package core

import (
	"strings"
	"unicode"
)

// DefaultIndentWidth is the number of spaces in one indentation level.
const DefaultIndentWidth = 4

// PairTable maps an opening delimiter to the delimiter that closes it.
type PairTable map[rune]rune

// DefaultPairs covers brackets, braces, parentheses, quotes and backticks.
var DefaultPairs = PairTable{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// brackets are the openers Enter treats as block starts.
var brackets = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// IsOpener reports whether r opens a pair.
func (t PairTable) IsOpener(r rune) bool {
	_, ok := t[r]
	return ok
}

// IsCloser reports whether r closes one of the pairs.
func (t PairTable) IsCloser(r rune) bool {
	for _, closer := range t {
		if closer == r {
			return true
		}
	}
	return false
}

// Edit is the outcome of a policy decision: replace Range with Insert,
// then land on Selection. A zero Edit means the key was not handled.
type Edit struct {
	Range     Selection
	Insert    string
	Selection Selection
	Handled   bool
}

// Policy decides what Tab, Shift+Tab, Enter, Backspace and delimiter keys do.
// Its methods are pure: they read the text and selection and return an Edit.
type Policy struct {
	IndentWidth int
	// ColonIndent indents one extra level after a line ending in ':'.
	ColonIndent bool
	Pairs       PairTable
}

func DefaultPolicy() Policy {
	return Policy{
		IndentWidth: DefaultIndentWidth,
		ColonIndent: true,
		Pairs:       DefaultPairs,
	}
}

func (p Policy) width() int {
	if p.IndentWidth <= 0 {
		return DefaultIndentWidth
	}
	return p.IndentWidth
}

func (p Policy) pairs() PairTable {
	if p.Pairs == nil {
		return DefaultPairs
	}
	return p.Pairs
}

// IndentUnit returns the run of spaces for one indentation level.
func (p Policy) IndentUnit() string {
	return strings.Repeat(" ", p.width())
}

// Tab inserts one indent unit at the caret, or indents every line touched by
// the selection. The new selection starts at the first line's start and ends
// past everything inserted.
func (p Policy) Tab(text []rune, sel Selection) Edit {
	unit := p.IndentUnit()
	if sel.IsCaret() {
		return Edit{
			Range:     sel,
			Insert:    unit,
			Selection: Caret(sel.Start + len(unit)),
			Handled:   true,
		}
	}

	start := lineStart(text, sel.Start)
	block := string(text[start:sel.End])
	indented := unit + strings.ReplaceAll(block, "\n", "\n"+unit)
	inserted := runeLen(indented) - (sel.End - start)

	return Edit{
		Range:     Selection{Start: start, End: sel.End},
		Insert:    indented,
		Selection: Selection{Start: start, End: sel.End + inserted},
		Handled:   true,
	}
}

type cut struct {
	at int
	n  int
}

// ShiftTab removes one indent unit, or whatever shorter run of leading spaces
// exists, from every line touched by the selection.
func (p Policy) ShiftTab(text []rune, sel Selection) Edit {
	width := p.width()
	start := lineStart(text, sel.Start)
	end := lineEnd(text, sel.End)

	out := make([]rune, 0, end-start)
	var cuts []cut
	begin := start
	for i := start; i <= end; i++ {
		if i < end && text[i] != '\n' {
			continue
		}
		line := text[begin:i]
		n := min(countSpaces(line), width)
		cuts = append(cuts, cut{at: begin, n: n})
		out = append(out, line[n:]...)
		if i < end {
			out = append(out, '\n')
		}
		begin = i + 1
	}

	shift := func(offset int) int {
		moved := offset
		for _, c := range cuts {
			moved -= clamp(offset-c.at, 0, c.n)
		}
		return moved
	}

	return Edit{
		Range:     Selection{Start: start, End: end},
		Insert:    string(out),
		Selection: Selection{Start: shift(sel.Start), End: shift(sel.End)},
		Handled:   true,
	}
}

// Enter inserts a newline carrying the current line's indentation, one level
// deeper after an opening bracket or a trailing colon. Between a bracket and
// its closer the closer is pushed to its own line at the base indentation.
func (p Policy) Enter(text []rune, sel Selection) Edit {
	start := lineStart(text, sel.Start)
	before := text[start:sel.Start]
	base := string(before[:countIndent(before)])
	unit := p.IndentUnit()

	var prev, next rune
	if sel.Start > 0 {
		prev = text[sel.Start-1]
	}
	if sel.End < len(text) {
		next = text[sel.End]
	}

	closer, afterOpener := brackets[prev]
	trimmed := strings.TrimRightFunc(string(before), unicode.IsSpace)

	var insert string
	caret := -1
	switch {
	case afterOpener && next == closer:
		first := "\n" + base + unit
		insert = first + "\n" + base
		caret = sel.Start + runeLen(first)
	case afterOpener:
		insert = "\n" + base + unit
	case p.ColonIndent && strings.HasSuffix(trimmed, ":"):
		insert = "\n" + base + unit
	default:
		insert = "\n" + base
	}

	if caret < 0 {
		caret = sel.Start + runeLen(insert)
	}

	return Edit{
		Range:     sel,
		Insert:    insert,
		Selection: Caret(caret),
		Handled:   true,
	}
}

// Backspace deletes a whole indent unit when only spaces, a nonzero multiple
// of the unit, precede the caret on its line.
func (p Policy) Backspace(text []rune, sel Selection) Edit {
	if !sel.IsCaret() {
		return Edit{}
	}

	width := p.width()
	start := lineStart(text, sel.Start)
	n := sel.Start - start
	if n == 0 || n%width != 0 || countSpaces(text[start:sel.Start]) != n {
		return Edit{}
	}

	return Edit{
		Range:     Selection{Start: sel.Start - width, End: sel.Start},
		Selection: Caret(sel.Start - width),
		Handled:   true,
	}
}

// OpenPair inserts r with its closer around the caret, or wraps the selection
// and keeps the wrapped text selected.
func (p Policy) OpenPair(text []rune, sel Selection, r rune) Edit {
	closer, ok := p.pairs()[r]
	if !ok {
		return Edit{}
	}

	if sel.IsCaret() {
		return Edit{
			Range:     sel,
			Insert:    string([]rune{r, closer}),
			Selection: Caret(sel.Start + 1),
			Handled:   true,
		}
	}

	return Edit{
		Range:     sel,
		Insert:    string(r) + string(text[sel.Start:sel.End]) + string(closer),
		Selection: Selection{Start: sel.Start + 1, End: sel.End + 1},
		Handled:   true,
	}
}

// ClosePair steps over r when it is a closer already sitting after the caret.
func (p Policy) ClosePair(text []rune, sel Selection, r rune) Edit {
	if !sel.IsCaret() || !p.pairs().IsCloser(r) {
		return Edit{}
	}
	if sel.Start >= len(text) || text[sel.Start] != r {
		return Edit{}
	}

	return Edit{
		Range:     sel,
		Selection: Caret(sel.Start + 1),
		Handled:   true,
	}
}

// countIndent counts leading spaces and tabs.
func countIndent(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func runeLen(s string) int {
	return len([]rune(s))
}
