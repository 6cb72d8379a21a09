package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/codepad/highlighter"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codepad.toml")
	content := `
indent_width = 2
colon_indent = false
theme = "monokai"
extra_keywords = ["match", "case"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.IndentWidth)
	assert.False(t, cfg.ColonIndent)
	assert.Equal(t, "monokai", cfg.Theme)
	assert.Equal(t, "python", cfg.Language)
	assert.True(t, cfg.LineNumbers)
	assert.Equal(t, []string{"match", "case"}, cfg.ExtraKeywords)

	p := cfg.Policy()
	assert.Equal(t, 2, p.IndentWidth)
	assert.False(t, p.ColonIndent)
	assert.Equal(t, "  ", p.IndentUnit())
}

func TestLoadFromReader_Errors(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("indent_width = 0"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFromReader(strings.NewReader("indent_width = 99"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFromReader(strings.NewReader("indent_width = ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<reader>")
}

func TestConfig_Lexicon(t *testing.T) {
	assert.Same(t, highlighter.Python, Default().Lexicon())

	cfg := Default()
	cfg.ExtraBuiltins = []string{"super"}
	tokens := highlighter.Tokenize("super", cfg.Lexicon())
	assert.Equal(t, []highlighter.Token{{Category: highlighter.Builtin, Text: "super"}}, tokens)
}
