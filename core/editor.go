package core

import (
	"fmt"
	"strings"
)

// Editor represents the main editor interface
type Editor interface {
	// Buffer manipulation
	GetBuffer() Buffer
	GetValue() string      // Current content, e.g. for submission
	SetValue(value string) // Replace the content wholesale and reset the caret
	Selection() Selection
	SetSelection(Selection)
	InsertText(text string) error // Insert text over the selection, as a paste would

	// Editing policy
	GetPolicy() Policy
	SetPolicy(Policy)

	// Event handling. Reports whether the key was intercepted by the
	// editing policy rather than handled as plain input.
	HandleKey(key KeyEvent) (bool, error)

	// Derived views
	Gutter() []LineLabel
	CursorLine(metrics LineMetrics) CursorBand

	// Clipboard
	Copy() error
	Paste() error

	GetUpdateSignalChan() <-chan Signal         // For UI updates
	DispatchError(id ErrorId, err error)        // Dispatch errors to consumers
	DispatchMessage(id string, value ...string) // Dispatch (success) messages to consumers
	DispatchSignal(signal Signal)               // Dispatch signals to consumers
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Concrete implementation of Editor. Each instance owns its buffer; nothing
// is shared between editors.
type editor struct {
	buffer       Buffer
	policy       Policy
	anchor       int // Fixed end of a selection being extended with Shift
	clipboard    Clipboard
	updateSignal chan Signal
}

// New creates a new editor instance. clipboard may be nil, in which case
// Copy and Paste report ErrNoClipboard.
func New(clipboard Clipboard) Editor {
	return &editor{
		buffer:       NewBuffer(),
		policy:       DefaultPolicy(),
		clipboard:    clipboard,
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

func (e *editor) GetValue() string {
	return e.buffer.Value()
}

func (e *editor) SetValue(value string) {
	e.buffer.SetValue(normalizeNewlines(value))
	e.anchor = 0
	e.DispatchSignal(ChangeSignal{})
}

func (e *editor) Selection() Selection {
	return e.buffer.Selection()
}

func (e *editor) SetSelection(sel Selection) {
	before := e.buffer.Selection()
	e.buffer.SetSelection(sel)
	if e.buffer.Selection() != before {
		e.DispatchSignal(ChangeSignal{})
	}
}

func (e *editor) GetPolicy() Policy {
	return e.policy
}

func (e *editor) SetPolicy(policy Policy) {
	e.policy = policy
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

func (e *editor) HandleKey(key KeyEvent) (bool, error) {
	edit := e.classify(key)
	if edit.Handled {
		if err := e.apply(edit); err != nil {
			e.DispatchError(ErrInvalidRangeId, err)
			return true, err
		}
		e.DispatchSignal(ChangeSignal{})
		return true, nil
	}

	changed, err := e.handleInput(key)
	if err != nil {
		e.DispatchError(ErrInvalidRangeId, err)
		return false, err
	}
	if changed {
		e.DispatchSignal(ChangeSignal{})
	}
	return false, nil
}

// classify maps a key onto the editing policy. An unhandled Edit leaves the
// key to plain input.
func (e *editor) classify(key KeyEvent) Edit {
	text := e.buffer.Runes()
	sel := e.buffer.Selection()

	switch key.Key {
	case KeyTab:
		if key.Ctrl() || key.Alt() {
			return Edit{}
		}
		if key.Shift() {
			return e.policy.ShiftTab(text, sel)
		}
		return e.policy.Tab(text, sel)
	case KeyEnter:
		return e.policy.Enter(text, sel)
	case KeyBackspace:
		return e.policy.Backspace(text, sel)
	}

	if !key.typed() {
		return Edit{}
	}

	// Stepping over an existing closer wins, so a quote typed before the
	// same quote does not open a new pair.
	if edit := e.policy.ClosePair(text, sel, key.Rune); edit.Handled {
		return edit
	}
	if !e.policy.pairs().IsOpener(key.Rune) {
		return Edit{}
	}
	return e.policy.OpenPair(text, sel, key.Rune)
}

// apply performs an edit as a single replacement followed by the landing
// selection. Replace validates before mutating, so a failed edit changes nothing.
func (e *editor) apply(edit Edit) error {
	if _, err := e.buffer.Replace(edit.Range, edit.Insert); err != nil {
		return err
	}
	e.buffer.SetSelection(edit.Selection)
	e.anchor = e.buffer.Selection().Start
	return nil
}

func (e *editor) InsertText(text string) error {
	if _, err := e.replace(e.buffer.Selection(), normalizeNewlines(text)); err != nil {
		e.DispatchError(ErrInvalidRangeId, err)
		return err
	}
	e.DispatchSignal(ChangeSignal{})
	return nil
}

func (e *editor) Gutter() []LineLabel {
	return Gutter(e.buffer.Runes(), e.buffer.Selection().Start)
}

func (e *editor) CursorLine(metrics LineMetrics) CursorBand {
	return CursorLine(e.buffer.Runes(), e.buffer.Selection().Start, metrics)
}

func (e *editor) Copy() error {
	if e.clipboard == nil {
		e.DispatchError(ErrNoClipboardId, ErrNoClipboard)
		return ErrNoClipboard
	}

	content := e.buffer.Value()
	if err := e.clipboard.Write(content); err != nil {
		err = fmt.Errorf("%w: %w", ErrCopyFailed, err)
		e.DispatchError(ErrCopyFailedId, err)
		return err
	}

	e.DispatchSignal(CopySignal{content})
	e.DispatchMessage(CopiedMessage)
	return nil
}

func (e *editor) Paste() error {
	if e.clipboard == nil {
		e.DispatchError(ErrNoClipboardId, ErrNoClipboard)
		return ErrNoClipboard
	}

	text, err := e.clipboard.Read()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	return e.InsertText(text)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
