package highlighter

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// WriteHTML writes src as a standalone HTML page colored with a chroma theme.
func WriteHTML(w io.Writer, src string, lex *Lexicon, theme string) error {
	tokens := Tokenize(src, lex)

	chromaTokens := make([]chroma.Token, 0, len(tokens))
	for _, tok := range tokens {
		chromaTokens = append(chromaTokens, chroma.Token{Type: TokenType(tok.Category), Value: tok.Text})
	}

	formatter := html.New(html.Standalone(true), html.WithLineNumbers(true))
	if err := formatter.Format(w, styles.Get(theme), chroma.Literator(chromaTokens...)); err != nil {
		return fmt.Errorf("format html: %w", err)
	}

	return nil
}
