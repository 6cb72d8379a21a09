package highlighter

import "strings"

// Lexicon holds the fixed word lists and markers the tokenizer matches against.
type Lexicon struct {
	Name          string
	CommentPrefix string
	Quotes        string // Runes that open a string literal

	keywords map[string]bool
	builtins map[string]bool
}

// NewLexicon builds a lexicon. Keywords take precedence over builtins.
func NewLexicon(name, commentPrefix, quotes string, keywords, builtins []string) *Lexicon {
	l := &Lexicon{
		Name:          name,
		CommentPrefix: commentPrefix,
		Quotes:        quotes,
		keywords:      make(map[string]bool, len(keywords)),
		builtins:      make(map[string]bool, len(builtins)),
	}
	for _, k := range keywords {
		l.keywords[k] = true
	}
	for _, b := range builtins {
		l.builtins[b] = true
	}
	return l
}

// With returns a copy of the lexicon with extra words added.
func (l *Lexicon) With(keywords, builtins []string) *Lexicon {
	out := NewLexicon(l.Name, l.CommentPrefix, l.Quotes, keywords, builtins)
	for k := range l.keywords {
		out.keywords[k] = true
	}
	for b := range l.builtins {
		out.builtins[b] = true
	}
	return out
}

func (l *Lexicon) classify(word string) Category {
	switch {
	case l.keywords[word]:
		return Keyword
	case l.builtins[word]:
		return Builtin
	default:
		return Plain
	}
}

func (l *Lexicon) startsComment(runes []rune, i int) bool {
	if l.CommentPrefix == "" {
		return false
	}
	prefix := []rune(l.CommentPrefix)
	if i+len(prefix) > len(runes) {
		return false
	}
	return string(runes[i:i+len(prefix)]) == l.CommentPrefix
}

func (l *Lexicon) isQuote(r rune) bool {
	return strings.ContainsRune(l.Quotes, r)
}

var Python = NewLexicon("python", "#", `"'`,
	[]string{
		"def", "class", "if", "elif", "else", "for", "while", "try", "except",
		"finally", "with", "as", "import", "from", "return", "yield", "raise",
		"pass", "break", "continue", "lambda", "and", "or", "not", "in", "is",
		"True", "False", "None", "async", "await",
	},
	[]string{
		"print", "len", "range", "int", "str", "float", "list", "dict", "set",
		"tuple", "bool", "sum", "max", "min", "abs", "round", "sorted",
		"enumerate", "zip", "map", "filter", "input", "open", "self",
	},
)

var lexicons = map[string]*Lexicon{
	Python.Name: Python,
}

// Get returns the lexicon registered under name, or Python.
func Get(name string) *Lexicon {
	if l, ok := lexicons[strings.ToLower(name)]; ok {
		return l
	}
	return Python
}
