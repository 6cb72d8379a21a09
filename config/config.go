// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ionut-t/codepad/core"
	"github.com/ionut-t/codepad/highlighter"
)

var ErrInvalidConfig = errors.New("invalid config")

const maxIndentWidth = 16

// Config holds the editor settings.
type Config struct {
	IndentWidth   int      `toml:"indent_width"`
	ColonIndent   bool     `toml:"colon_indent"`
	Language      string   `toml:"language"`
	Theme         string   `toml:"theme"`
	LineNumbers   bool     `toml:"line_numbers"`
	ExtraKeywords []string `toml:"extra_keywords"`
	ExtraBuiltins []string `toml:"extra_builtins"`
}

func Default() Config {
	return Config{
		IndentWidth: core.DefaultIndentWidth,
		ColonIndent: true,
		Language:    "python",
		Theme:       "catppuccin-mocha",
		LineNumbers: true,
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadFromReader reads a config from r.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

// parse starts from the defaults, so keys absent from the file keep them.
func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.IndentWidth < 1 || c.IndentWidth > maxIndentWidth {
		return fmt.Errorf("%w: indent_width %d not within [1, %d]", ErrInvalidConfig, c.IndentWidth, maxIndentWidth)
	}
	return nil
}

// Policy returns the editing policy described by the config.
func (c Config) Policy() core.Policy {
	p := core.DefaultPolicy()
	p.IndentWidth = c.IndentWidth
	p.ColonIndent = c.ColonIndent
	return p
}

// Lexicon returns the highlighter lexicon with any extra words added.
func (c Config) Lexicon() *highlighter.Lexicon {
	lex := highlighter.Get(c.Language)
	if len(c.ExtraKeywords) == 0 && len(c.ExtraBuiltins) == 0 {
		return lex
	}
	return lex.With(c.ExtraKeywords, c.ExtraBuiltins)
}
