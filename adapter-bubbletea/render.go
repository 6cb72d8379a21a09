package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	editor "github.com/ionut-t/codepad/core"
	"github.com/ionut-t/codepad/highlighter"
)

type cellState int

const (
	cellNormal cellState = iota
	cellSelected
	cellCaret
)

// refresh re-renders the whole buffer into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls just enough to keep the caret's line on screen.
func (m *Model) followCursor() {
	band := m.editor.CursorLine(editor.TerminalLineMetrics(m.viewport.YOffset))
	top := int(band.Top)

	switch {
	case top < 0:
		m.viewport.SetYOffset(m.viewport.YOffset + top)
	case top >= m.viewport.Height:
		m.viewport.SetYOffset(m.viewport.YOffset + top - m.viewport.Height + 1)
	}
}

func calculateLineNumberWidth(totalLines int) int {
	maxWidth := len(strconv.Itoa(max(1, totalLines)))
	lineNumWidth := max(4, maxWidth) + 1
	return min(lineNumWidth, 10)
}

func (m *Model) renderContent() string {
	text := m.editor.GetBuffer().Runes()
	sel := m.editor.Selection()
	labels := m.editor.Gutter()
	band := m.editor.CursorLine(editor.TerminalLineMetrics(m.viewport.YOffset))
	lines := highlighter.Lines(highlighter.Tokenize(string(text), m.lexicon))

	lineNumWidth := 0
	if m.showLineNumbers {
		lineNumWidth = calculateLineNumberWidth(len(labels))
	}
	availableWidth := max(1, m.viewport.Width-lineNumWidth)

	var contentBuilder strings.Builder
	offset := 0
	for i, tokens := range lines {
		if i > 0 {
			contentBuilder.WriteString("\n")
		}

		active := i == band.Line

		if m.showLineNumbers && i < len(labels) {
			style := m.theme.LineNumberStyle
			if labels[i].Active {
				style = m.theme.CurrentLineNumberStyle
			}
			contentBuilder.WriteString(style.Width(lineNumWidth-1).Render(strconv.Itoa(labels[i].Number)) + " ")
		}

		line, width, end := m.renderLine(tokens, offset, sel, active)
		contentBuilder.WriteString(line)

		if active && width < availableWidth {
			contentBuilder.WriteString(m.theme.CursorLineStyle.Render(strings.Repeat(" ", availableWidth-width)))
		}

		offset = end + 1
	}

	return contentBuilder.String()
}

// renderLine styles one line starting at buffer offset start. It returns
// the rendered text, its width in cells and the offset of the line end.
func (m *Model) renderLine(tokens []highlighter.Token, start int, sel editor.Selection, active bool) (string, int, int) {
	caret := -1
	if m.isFocused && sel.IsCaret() {
		caret = sel.Start
	}

	var sb strings.Builder
	width := 0
	offset := start

	for _, tok := range tokens {
		base := m.palette.Style(tok.Category)
		if active {
			base = base.Background(m.theme.CursorLineStyle.GetBackground())
		}

		runes := []rune(tok.Text)
		for i := 0; i < len(runes); {
			state := cellAt(offset+i, sel, caret)
			j := i + 1
			for j < len(runes) && cellAt(offset+j, sel, caret) == state {
				j++
			}

			segment := string(runes[i:j])
			sb.WriteString(m.cellStyle(state, base).Render(segment))
			width += uniseg.StringWidth(segment)
			i = j
		}

		offset += len(runes)
	}

	if caret == offset {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
		width++
	}

	return sb.String(), width, offset
}

func cellAt(pos int, sel editor.Selection, caret int) cellState {
	switch {
	case pos == caret:
		return cellCaret
	case pos >= sel.Start && pos < sel.End:
		return cellSelected
	}
	return cellNormal
}

func (m *Model) cellStyle(state cellState, base lipgloss.Style) lipgloss.Style {
	switch state {
	case cellCaret:
		return m.theme.CursorStyle.Inherit(base)
	case cellSelected:
		return m.theme.SelectionStyle.Inherit(base)
	}
	return base
}

func (m *Model) getStatusLine() string {
	if !m.showStatusLine {
		return ""
	}

	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var statusLine string
	switch {
	case m.err != nil:
		statusLine = m.theme.ErrorStyle.Render(" " + m.err.Error() + " ")
	case m.message != "":
		statusLine = m.theme.MessageStyle.Render(" " + m.message + " ")
	}

	row, col := editor.Position(m.editor.GetBuffer().Runes(), m.editor.Selection().Start)

	modified := ""
	if m.HasChanges() {
		modified = "[+] "
	}
	cursorInfo := fmt.Sprintf("%s%d/%d ", modified, row+1, col+1)

	width := m.width - (lipgloss.Width(cursorInfo) + lipgloss.Width(statusLine))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(
		gap + cursorInfo,
	)

	return statusLine
}
