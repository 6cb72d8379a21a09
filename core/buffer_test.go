package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_ReplaceLeavesCaretAfterInsertion(t *testing.T) {
	b := NewBufferFromString("hello world")

	sel, err := b.Replace(Selection{Start: 6, End: 11}, "gopher")
	require.NoError(t, err)

	assert.Equal(t, "hello gopher", b.Value())
	assert.Equal(t, Caret(12), sel)
	assert.Equal(t, sel, b.Selection())
}

func TestBuffer_ReplaceCountsRunes(t *testing.T) {
	b := NewBufferFromString("héllo")

	sel, err := b.Replace(Selection{Start: 1, End: 2}, "éé")
	require.NoError(t, err)

	assert.Equal(t, "hééllo", b.Value())
	assert.Equal(t, Caret(3), sel)
	assert.Equal(t, 6, b.Len())
}

func TestBuffer_ReplaceRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name string
		r    Selection
	}{
		{"negative start", Selection{Start: -1, End: 0}},
		{"end before start", Selection{Start: 2, End: 1}},
		{"end past buffer", Selection{Start: 0, End: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString("abc")
			b.SetSelection(Caret(1))

			_, err := b.Replace(tt.r, "x")
			require.ErrorIs(t, err, ErrInvalidRange)
			assert.Equal(t, "abc", b.Value())
			assert.Equal(t, Caret(1), b.Selection())
		})
	}
}

func TestBuffer_SetSelectionNormalizesAndClamps(t *testing.T) {
	b := NewBufferFromString("abc")

	b.SetSelection(Selection{Start: 2, End: 1})
	assert.Equal(t, Selection{Start: 1, End: 2}, b.Selection())

	b.SetSelection(Selection{Start: -5, End: 10})
	assert.Equal(t, Selection{Start: 0, End: 3}, b.Selection())
}

func TestBuffer_SetValueResetsCaretAndBaseline(t *testing.T) {
	b := NewBufferFromString("def f():\n    pass")
	b.SetSelection(Caret(5))

	_, err := b.Replace(Caret(0), "#")
	require.NoError(t, err)
	assert.True(t, b.IsModified())

	b.SetValue("x = 1")
	assert.Equal(t, Caret(0), b.Selection())
	assert.False(t, b.IsModified())
	assert.Equal(t, "x = 1", b.SavedValue())
}

func TestBuffer_IsEmpty(t *testing.T) {
	assert.True(t, NewBuffer().IsEmpty())
	assert.False(t, NewBufferFromString("\n").IsEmpty())
}
