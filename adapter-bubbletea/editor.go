package adapter_bubbletea

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/ionut-t/codepad/core"
	"github.com/ionut-t/codepad/highlighter"
)

type Theme struct {
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorLineStyle        lipgloss.Style
	CursorStyle            lipgloss.Style
	SelectionStyle         lipgloss.Style
	StatusLineStyle        lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Align(lipgloss.Right),
	CursorLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("238")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

const defaultHighlightTheme = "catppuccin-mocha"

type Model struct {
	editor          editor.Editor
	viewport        viewport.Model
	width           int
	height          int
	showLineNumbers bool
	showStatusLine  bool
	theme           Theme
	StatusLineFunc  func() string
	err             error
	message         string
	clearMsgCancel  context.CancelFunc
	isFocused       bool
	starter         string
	lexicon         *highlighter.Lexicon
	palette         highlighter.Palette
	highlightTheme  string
}

// ChangeMsg is sent after every change to the content or the selection.
// It carries nothing; read the content with GetValue if needed.
type ChangeMsg struct{}

// SubmitMsg carries the content the user asked to submit.
type SubmitMsg struct {
	Content string
}

// ResetMsg is sent after the content was restored to the starter code.
type ResetMsg struct{}

// CopyMsg is sent after the content was copied to the clipboard.
type CopyMsg struct {
	Content string
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

type messageMsg string

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

const messageDuration = 3 * time.Second

func New(width, height int) Model {
	return NewWithClipboard(width, height, &clipboardImpl{})
}

// NewWithClipboard creates a model backed by a custom clipboard.
func NewWithClipboard(width, height int, cb editor.Clipboard) Model {
	vp := viewport.New(width, height)
	// Keys belong to the editor; the viewport only scrolls with the mouse wheel.
	vp.KeyMap = viewport.KeyMap{}

	m := Model{
		editor:          editor.New(cb),
		viewport:        vp,
		showLineNumbers: true,
		showStatusLine:  true,
		theme:           DefaultTheme,
		lexicon:         highlighter.Python,
		highlightTheme:  defaultHighlightTheme,
		palette:         highlighter.NewPalette(defaultHighlightTheme),
	}

	m.SetSize(width, height)

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.showStatusLine {
		m.viewport.Height = max(1, height-1)
	}

	m.refresh()
}

// SetStarterCode loads a new piece of starter code. Reset restores it.
func (m *Model) SetStarterCode(code string) {
	m.starter = code
	m.SetValue(code)
}

// SetValue replaces the content and puts the caret at the start.
func (m *Model) SetValue(value string) {
	m.editor.SetValue(value)
	m.viewport.SetYOffset(0)
	m.refresh()
}

// GetValue returns the current content.
func (m *Model) GetValue() string {
	return m.editor.GetValue()
}

// Reset restores the starter code.
func (m *Model) Reset() {
	m.SetValue(m.starter)
	m.editor.DispatchMessage(editor.ResetMessage)
}

// HasChanges reports whether the content differs from what was last loaded.
func (m *Model) HasChanges() bool {
	return m.editor.GetBuffer().IsModified()
}

// Submit returns a command delivering the current content as a SubmitMsg.
func (m *Model) Submit() tea.Cmd {
	content := m.editor.GetValue()
	return func() tea.Msg {
		return SubmitMsg{Content: content}
	}
}

// SetPolicy replaces the indentation and pairing rules.
func (m *Model) SetPolicy(policy editor.Policy) {
	m.editor.SetPolicy(policy)
}

// SetLexicon sets the word lists used for syntax highlighting.
func (m *Model) SetLexicon(lexicon *highlighter.Lexicon) {
	m.lexicon = lexicon
	m.refresh()
}

// SetHighlightTheme sets the chroma theme the syntax colors are taken from.
func (m *Model) SetHighlightTheme(theme string) {
	if m.highlightTheme == theme {
		return
	}
	m.highlightTheme = theme
	m.palette = highlighter.NewPalette(theme)
	m.refresh()
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.refresh()
}

// HideLineNumbers controls whether to show line numbers in the gutter.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
	m.refresh()
}

// HideStatusLine controls whether to show the status line below the content.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// DispatchMessage allows setting a message to be displayed in the status line for a specified duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

// DispatchError allows setting an error to be displayed in the status line for a specified duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// Focus sets the editor to focused state.
func (m *Model) Focus() {
	m.isFocused = true
}

// Blur sets the editor to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
}

// IsFocused returns whether the editor is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.refresh()
		m.followCursor()

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case ChangeMsg:
		// Mutations made through GetEditor only reach the view here.
		m.refresh()
		m.followCursor()
		cmds = append(cmds, m.listenForEditorUpdate())

	case CopyMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case messageMsg:
		cmds = append(cmds, m.DispatchMessage(string(msg), messageDuration), m.listenForEditorUpdate())

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, messageDuration), m.listenForEditorUpdate())

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlS:
		return m.Submit()

	case tea.KeyCtrlR:
		m.Reset()
		return func() tea.Msg { return ResetMsg{} }

	case tea.KeyCtrlY:
		// Failures reach the status line through the editor's error signal.
		_ = m.editor.Copy()
		return nil

	case tea.KeyCtrlV:
		if err := m.editor.Paste(); err != nil && !errors.Is(err, editor.ErrNoClipboard) {
			return m.DispatchError(err, messageDuration)
		}
		return nil
	}

	if msg.Paste {
		_ = m.editor.InsertText(string(msg.Runes))
		return nil
	}

	// Several runes arrive in one message when typing faster than the
	// terminal is read; each goes through the editing policy on its own.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			key := editor.KeyEvent{Rune: r}
			if msg.Alt {
				key.Modifiers |= editor.ModAlt
			}
			_, _ = m.editor.HandleKey(key)
		}
		return nil
	}

	// Errors reach the status line through the editor's error signal.
	_, _ = m.editor.HandleKey(convertBubbleKey(msg))
	return nil
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.showStatusLine {
		return content
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.getStatusLine(),
	)
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	return func() tea.Msg {
		editorChan := m.editor.GetUpdateSignalChan()
		signal := <-editorChan

		switch signal := signal.(type) {
		case editor.ChangeSignal:
			return ChangeMsg{}

		case editor.CopySignal:
			return CopyMsg{Content: signal.Value()}

		case editor.MessageSignal:
			_, message := signal.Value()
			return messageMsg(message)

		case editor.ErrorSignal:
			id, err := signal.Value()
			return ErrorMsg{ID: id, Error: err}
		}

		return ChangeMsg{}
	}
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Rune = ' '
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	case tea.KeyTab:
		key.Key = editor.KeyTab
	case tea.KeyShiftTab:
		key.Key = editor.KeyTab
		key.Modifiers |= editor.ModShift
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyShiftUp:
		key.Key = editor.KeyUp
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftDown:
		key.Key = editor.KeyDown
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftLeft:
		key.Key = editor.KeyLeft
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftRight:
		key.Key = editor.KeyRight
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftHome:
		key.Key = editor.KeyHome
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftEnd:
		key.Key = editor.KeyEnd
		key.Modifiers |= editor.ModShift
	case tea.KeyCtrlA:
		key.Rune = 'a'
		key.Modifiers |= editor.ModCtrl
	}

	return key
}
