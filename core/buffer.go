package core

import (
	"fmt"
)

// Selection is a half-open range [Start, End) of rune offsets into the buffer.
// Start == End denotes a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Span returns the selection covering a and b in either order.
func Span(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// IsCaret reports whether the selection is empty.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Buffer holds the editable text and the active selection.
// All offsets are rune offsets.
type Buffer interface {
	// Content access
	Value() string  // Entire content as a string
	Runes() []rune  // Entire content as runes; callers must not modify it
	Len() int       // Number of runes
	IsEmpty() bool  // Check if buffer is empty
	IsModified() bool
	SavedValue() string // Content last set with SetValue

	// Modification
	Replace(r Selection, text string) (Selection, error)
	SetValue(value string) // Replace everything and put the caret at 0

	// Selection
	Selection() Selection
	SetSelection(Selection)
}

// textBuffer keeps the content as one flat rune slice; line boundaries are derived.
type textBuffer struct {
	text  []rune
	sel   Selection
	saved string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{text: []rune{}}
}

func NewBufferFromString(value string) Buffer {
	b := &textBuffer{}
	b.SetValue(value)
	return b
}

func (b *textBuffer) Value() string {
	return string(b.text)
}

func (b *textBuffer) Runes() []rune {
	return b.text
}

func (b *textBuffer) Len() int {
	return len(b.text)
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.text) == 0
}

func (b *textBuffer) IsModified() bool {
	return b.saved != string(b.text)
}

func (b *textBuffer) SavedValue() string {
	return b.saved
}

func (b *textBuffer) SetValue(value string) {
	b.text = []rune(value)
	b.saved = value
	b.sel = Caret(0)
}

func (b *textBuffer) Selection() Selection {
	return b.sel
}

// SetSelection sets the selection, normalizing and clamping it to the buffer.
func (b *textBuffer) SetSelection(sel Selection) {
	sel = Span(sel.Start, sel.End)
	sel.Start = clamp(sel.Start, 0, len(b.text))
	sel.End = clamp(sel.End, 0, len(b.text))
	b.sel = sel
}

// Replace substitutes the runes in r with text and leaves a caret right after
// the inserted text.
func (b *textBuffer) Replace(r Selection, text string) (Selection, error) {
	if r.Start < 0 || r.End < r.Start || r.End > len(b.text) {
		return b.sel, fmt.Errorf("Replace: %w: [%d, %d) not within [0, %d]", ErrInvalidRange, r.Start, r.End, len(b.text))
	}

	insert := []rune(text)
	newText := make([]rune, 0, len(b.text)-r.Len()+len(insert))
	newText = append(newText, b.text[:r.Start]...)
	newText = append(newText, insert...)
	newText = append(newText, b.text[r.End:]...)
	b.text = newText

	b.sel = Caret(r.Start + len(insert))
	return b.sel, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
