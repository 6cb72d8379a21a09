package highlighter

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var tokenTypes = map[Category]chroma.TokenType{
	Plain:   chroma.Text,
	Keyword: chroma.Keyword,
	Builtin: chroma.NameBuiltin,
	Number:  chroma.LiteralNumber,
	Comment: chroma.Comment,
}

// TokenType maps a category onto the chroma token type used for its color.
func TokenType(c Category) chroma.TokenType {
	if tt, ok := tokenTypes[c]; ok {
		return tt
	}
	return chroma.Text
}

// Palette holds a lipgloss style per category.
type Palette map[Category]lipgloss.Style

// NewPalette derives a palette from a chroma theme. Unknown themes fall back
// to chroma's default style.
// For a full list of available themes, see: https://github.com/alecthomas/chroma/blob/master/styles
func NewPalette(theme string) Palette {
	style := styles.Get(theme)

	p := make(Palette, len(tokenTypes))
	for cat, tt := range tokenTypes {
		p[cat] = toLipgloss(style.Get(tt))
	}
	return p
}

// Style returns the style for c, or an empty style.
func (p Palette) Style(c Category) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func toLipgloss(entry chroma.StyleEntry) lipgloss.Style {
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}

	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	return style
}
