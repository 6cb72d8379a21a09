package highlighter

import (
	"fmt"
	"strings"
	"unicode"
)

// Category classifies a token for coloring.
type Category int

const (
	Plain Category = iota
	Keyword
	Builtin
	Number
	Comment
)

func (c Category) String() string {
	switch c {
	case Plain:
		return "plain"
	case Keyword:
		return "keyword"
	case Builtin:
		return "builtin"
	case Number:
		return "number"
	case Comment:
		return "comment"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Token is a classified span of source text.
type Token struct {
	Category Category
	Text     string
}

// Tokenize scans src once from left to right and classifies each maximal run.
// It is lexical only and accepts any input: unbalanced brackets, unterminated
// strings and partial comments just produce coarser tokens.
// Concatenating the token texts always yields src.
func Tokenize(src string, lex *Lexicon) []Token {
	if lex == nil {
		lex = Python
	}

	runes := []rune(src)
	var tokens []Token
	emit := func(cat Category, text []rune) {
		if len(text) == 0 {
			return
		}
		if n := len(tokens); n > 0 && cat == Plain && tokens[n-1].Category == Plain {
			tokens[n-1].Text += string(text)
			return
		}
		tokens = append(tokens, Token{Category: cat, Text: string(text)})
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		var j int

		switch {
		case lex.startsComment(runes, i):
			j = endOfLine(runes, i)
			emit(Comment, runes[i:j])

		case lex.isQuote(r):
			j = scanString(runes, i)
			emit(Plain, runes[i:j])

		case isWordStart(r):
			j = scanWord(runes, i)
			emit(lex.classify(string(runes[i:j])), runes[i:j])

		case isDigit(r):
			var cat Category
			j, cat = scanNumber(runes, i)
			emit(cat, runes[i:j])

		default:
			j = i + 1
			emit(Plain, runes[i:j])
		}

		i = j
	}

	return tokens
}

// Lines splits tokens at newlines so each line can be rendered on its own.
// The result always has one entry per line of the source.
func Lines(tokens []Token) [][]Token {
	lines := [][]Token{nil}
	for _, tok := range tokens {
		value := tok.Text
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], Token{Category: tok.Category, Text: before})
			}
			lines = append(lines, nil)
			value = after
		}
		if value != "" {
			lines[len(lines)-1] = append(lines[len(lines)-1], Token{Category: tok.Category, Text: value})
		}
	}
	return lines
}

func endOfLine(runes []rune, i int) int {
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

// scanString returns the end of the string literal opening at i. An
// unterminated literal stops at the end of its line.
func scanString(runes []rune, i int) int {
	quote := runes[i]
	j := i + 1
	for j < len(runes) {
		switch runes[j] {
		case '\\':
			j += 2
			continue
		case '\n':
			return j
		case quote:
			return j + 1
		}
		j++
	}
	return min(j, len(runes))
}

func scanWord(runes []rune, i int) int {
	j := i + 1
	for j < len(runes) && isWordChar(runes[j]) {
		j++
	}
	return j
}

// scanNumber matches digits with an optional fractional part. Digits glued to
// identifier characters, as in 2x, are not a number.
func scanNumber(runes []rune, i int) (int, Category) {
	j := i
	for j < len(runes) && isDigit(runes[j]) {
		j++
	}
	if j+1 < len(runes) && runes[j] == '.' && isDigit(runes[j+1]) {
		j++
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
	}
	if j < len(runes) && isWordChar(runes[j]) {
		return scanWord(runes, j), Plain
	}
	return j, Number
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordChar(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}
