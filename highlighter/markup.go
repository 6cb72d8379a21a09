package highlighter

import (
	"strings"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Markup renders src as escaped HTML with every non-plain token wrapped in
// <span class="category">. Each token is escaped exactly once, so the output
// depends only on the raw source and never re-matches inserted markup.
func Markup(src string, lex *Lexicon) string {
	var sb strings.Builder
	sb.Grow(len(src))

	for _, tok := range Tokenize(src, lex) {
		text := escaper.Replace(tok.Text)
		if tok.Category == Plain {
			sb.WriteString(text)
			continue
		}
		sb.WriteString(`<span class="`)
		sb.WriteString(tok.Category.String())
		sb.WriteString(`">`)
		sb.WriteString(text)
		sb.WriteString(`</span>`)
	}

	return sb.String()
}
