package adapter_bubbletea

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editor "github.com/ionut-t/codepad/core"
)

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.content, c.err
}

func newModel(t *testing.T, starter string) (Model, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	m := NewWithClipboard(40, 10, cb)
	m.Focus()
	m.SetStarterCode(starter)
	return m, cb
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, keyType tea.KeyType, times int) Model {
	for range times {
		m = send(m, tea.KeyMsg{Type: keyType})
	}
	return m
}

// drain collects the messages for every pending editor signal.
func drain(m Model) []tea.Msg {
	var msgs []tea.Msg
	ch := m.editor.GetUpdateSignalChan()
	for len(ch) > 0 {
		msgs = append(msgs, m.listenForEditorUpdate()())
	}
	return msgs
}

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want editor.KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, editor.KeyEvent{Rune: 'x'}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, editor.KeyEvent{Rune: 'x', Modifiers: editor.ModAlt}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, editor.KeyEvent{Rune: ' '}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, editor.KeyEvent{Key: editor.KeyEnter}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, editor.KeyEvent{Key: editor.KeyTab}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, editor.KeyEvent{Key: editor.KeyTab, Modifiers: editor.ModShift}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, editor.KeyEvent{Key: editor.KeyBackspace}},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, editor.KeyEvent{Key: editor.KeyLeft, Modifiers: editor.ModShift}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, editor.KeyEvent{Key: editor.KeyEnd}},
		{"select all", tea.KeyMsg{Type: tea.KeyCtrlA}, editor.KeyEvent{Rune: 'a', Modifiers: editor.ModCtrl}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestModel_TypingGoesThroughPolicy(t *testing.T) {
	m, _ := newModel(t, "foo")

	m = press(m, tea.KeyEnd, 1)
	m = typeText(m, "(")
	assert.Equal(t, "foo()", m.GetValue())

	m = press(m, tea.KeyEnter, 1)
	assert.Equal(t, "foo(\n    \n)", m.GetValue())
	assert.Equal(t, editor.Caret(9), m.editor.Selection())

	m = press(m, tea.KeyShiftTab, 1)
	assert.Equal(t, "foo(\n\n)", m.GetValue())

	m = press(m, tea.KeyTab, 1)
	assert.Equal(t, "foo(\n    \n)", m.GetValue())
	assert.True(t, m.HasChanges())
}

func TestModel_RunesBatchedInOneMessage(t *testing.T) {
	m, _ := newModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("(x")})
	assert.Equal(t, "(x)", m.GetValue())
}

func TestModel_BracketedPasteIsLiteral(t *testing.T) {
	m, _ := newModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("if (a:\n"), Paste: true})
	assert.Equal(t, "if (a:\n", m.GetValue())
	assert.Equal(t, editor.Caret(7), m.editor.Selection())
}

func TestModel_IgnoresKeysWhenBlurred(t *testing.T) {
	m, _ := newModel(t, "x")
	m.Blur()

	m = typeText(m, "abc")
	assert.Equal(t, "x", m.GetValue())
	assert.False(t, m.IsFocused())
}

func TestModel_ResetRestoresStarter(t *testing.T) {
	m, _ := newModel(t, "print(1)")
	m = typeText(m, "zz")
	require.Equal(t, "zzprint(1)", m.GetValue())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	assert.NotNil(t, cmd)
	assert.Equal(t, "print(1)", m.GetValue())
	assert.False(t, m.HasChanges())
	assert.Contains(t, drain(m), messageMsg(editor.ResetMessage))
}

func TestModel_Submit(t *testing.T) {
	m, _ := newModel(t, "x = 1")

	assert.Equal(t, SubmitMsg{Content: "x = 1"}, m.Submit()())
}

func TestModel_CopyAndPaste(t *testing.T) {
	m, cb := newModel(t, "a = 1")
	drain(m)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "a = 1", cb.content)
	assert.Contains(t, drain(m), CopyMsg{Content: "a = 1"})

	cb.content = "b"
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "ba = 1", m.GetValue())
}

func TestModel_CopyFailureBecomesErrorMsg(t *testing.T) {
	m, cb := newModel(t, "a")
	drain(m)
	cb.err = errors.New("no display")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})

	var got *ErrorMsg
	for _, msg := range drain(m) {
		if e, ok := msg.(ErrorMsg); ok {
			got = &e
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, editor.ErrCopyFailedId, got.ID)
	assert.ErrorIs(t, got.Error, editor.ErrCopyFailed)

	next, _ := m.Update(*got)
	m = next.(Model)
	assert.Contains(t, ansi.Strip(m.View()), "no display")
}

func TestModel_ChangeMsgRerendersEditorMutations(t *testing.T) {
	m, _ := newModel(t, "x = 1")

	require.NoError(t, m.GetEditor().InsertText("zzz"))
	m = send(m, ChangeMsg{})
	assert.Contains(t, ansi.Strip(m.View()), "zzzx = 1")

	var lines []string
	for i := range 30 {
		lines = append(lines, fmt.Sprintf("row %d", i))
	}
	m.GetEditor().SetValue(strings.Join(lines, "\n"))
	m.GetEditor().SetSelection(editor.Caret(len(m.GetValue())))
	m = send(m, ChangeMsg{})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "row 29")
	assert.NotContains(t, view, "x = 1")
}

func TestModel_ViewShowsGutterAndStatus(t *testing.T) {
	m, _ := newModel(t, "a\nb\nc")

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	assert.True(t, strings.HasPrefix(lines[0], "   1 a"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "   2 b"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "   3 c"), lines[2])
	assert.Contains(t, view, "1/1")

	m.HideLineNumbers(true)
	view = ansi.Strip(m.View())
	assert.True(t, strings.HasPrefix(view, "a"), view)
}

func TestModel_ScrollFollowsCursor(t *testing.T) {
	var lines []string
	for i := range 50 {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	m, _ := newModel(t, strings.Join(lines, "\n"))
	m.SetSize(40, 6)
	require.Equal(t, 5, m.viewport.Height)

	m = press(m, tea.KeyDown, 10)
	band := m.editor.CursorLine(editor.TerminalLineMetrics(m.viewport.YOffset))
	assert.Equal(t, 10, band.Line)
	assert.Equal(t, 6, m.viewport.YOffset)
	assert.Equal(t, 4.0, band.Top)

	m = press(m, tea.KeyUp, 10)
	assert.Equal(t, 0, m.viewport.YOffset)

	m = send(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 3, m.viewport.YOffset)

	band = m.editor.CursorLine(editor.TerminalLineMetrics(m.viewport.YOffset))
	assert.Equal(t, -3.0, band.Top, "band moves with the scroll")
}

func TestCalculateLineNumberWidth(t *testing.T) {
	assert.Equal(t, 5, calculateLineNumberWidth(1))
	assert.Equal(t, 5, calculateLineNumberWidth(9999))
	assert.Equal(t, 6, calculateLineNumberWidth(10000))
}
