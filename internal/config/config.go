// Package config loads the retok.toml pipeline manifest and builds the
// processor pipeline it declares. Processor order in the manifest is the
// tokenizer's priority order, which is how ambiguity between recognizers
// (comment marker vs. operator character) is resolved.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"retok/internal/diag"
	"retok/internal/processor"
)

// ManifestName is the file the CLI discovers by upward directory walk.
const ManifestName = "retok.toml"

// Config mirrors retok.toml.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Comment  CommentConfig  `toml:"comment"`
	Scope    ScopeConfig    `toml:"scope"`
	Indent   IndentConfig   `toml:"indent"`
	Space    SpaceConfig    `toml:"space"`
}

// PipelineConfig declares which processors run and in which priority order.
type PipelineConfig struct {
	Processors []string `toml:"processors"`
}

// CommentConfig configures the comment recognizer.
type CommentConfig struct {
	Marker string `toml:"marker"`
}

// ScopeConfig configures the classic scope delimiter pair.
type ScopeConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// IndentConfig configures the indentation scope recognizer.
type IndentConfig struct {
	AllowMixed bool `toml:"allow_mixed"`
}

// SpaceConfig configures the silent whitespace consumer. Chars is spliced
// into a regex character class verbatim.
type SpaceConfig struct {
	Chars string `toml:"chars"`
}

// Default returns the zero-config pipeline: indentation scopes, newlines,
// '#' comments, merged literal recognizers, arithmetic operators, braces,
// and silent horizontal whitespace.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{Processors: []string{
			"indent", "newline", "comment", "literals", "operator", "ident", "scope", "space",
		}},
		Comment: CommentConfig{Marker: "#"},
		Scope:   ScopeConfig{Start: "{", End: "}"},
		Indent:  IndentConfig{AllowMixed: false},
		Space:   SpaceConfig{Chars: ` \t`},
	}
}

// Load reads a manifest, layering it over the defaults so absent sections
// keep their zero-config values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, diag.Errorf(diag.ConfigParse, "%s: failed to parse TOML: %v", path, err)
	}
	return cfg, nil
}

// Find walks upward from startDir looking for retok.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Build constructs a fresh processor pipeline in manifest order. Always
// call per input: the indentation processor is stateful and single-use.
func (c *Config) Build() ([]processor.Processor, error) {
	procs := make([]processor.Processor, 0, len(c.Pipeline.Processors))
	for _, name := range c.Pipeline.Processors {
		p, err := c.build(name)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func (c *Config) build(name string) (processor.Processor, error) {
	switch name {
	case "indent":
		return processor.NewIndentScope(c.Indent.AllowMixed), nil
	case "newline":
		return processor.NewNewLine(), nil
	case "comment":
		marker, err := singleRune("comment.marker", c.Comment.Marker)
		if err != nil {
			return nil, err
		}
		return processor.NewComment(marker), nil
	case "scope":
		start, err := singleRune("scope.start", c.Scope.Start)
		if err != nil {
			return nil, err
		}
		end, err := singleRune("scope.end", c.Scope.End)
		if err != nil {
			return nil, err
		}
		return processor.NewClassicScope(start, end), nil
	case "space":
		if c.Space.Chars == "" {
			return nil, diag.Errorf(diag.ConfigParse, "space.chars must not be empty")
		}
		// NewConsuming splices the set into a character class and panics
		// on bad patterns; reject manifest input here instead.
		if _, err := regexp.Compile("[" + c.Space.Chars + "]+"); err != nil {
			return nil, diag.Errorf(diag.ConfigParse, "space.chars is not a valid character class: %v", err)
		}
		return processor.NewConsuming(c.Space.Chars), nil
	case "number":
		return processor.NewNumber(), nil
	case "string":
		return processor.NewQuotedString(), nil
	case "boolean":
		return processor.NewBoolean(), nil
	case "literals":
		return processor.NewNumber().Or(processor.NewQuotedString()).Or(processor.NewBoolean()), nil
	case "operator":
		return processor.NewOperator(), nil
	case "ident":
		return processor.NewIdent(), nil
	default:
		return nil, diag.Errorf(diag.ConfigProcessor, "unknown processor %q", name)
	}
}

// Fingerprint returns a stable summary of everything that changes the
// token stream, used to key the token cache.
func (c *Config) Fingerprint() string {
	return fmt.Sprintf("v1|%s|%s|%s%s|%t|%s",
		strings.Join(c.Pipeline.Processors, ","),
		c.Comment.Marker,
		c.Scope.Start, c.Scope.End,
		c.Indent.AllowMixed,
		c.Space.Chars,
	)
}

func singleRune(key, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, diag.Errorf(diag.ConfigParse, "%s must be a single character, got %q", key, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
