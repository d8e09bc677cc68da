package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the configuration file syntax.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Options holds the interpreter settings a config file can override.
type Options struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	DebugAST    bool   `toml:"debug_ast" yaml:"debug_ast"`
	Color       bool   `toml:"color" yaml:"color"`
}

// Default returns the settings used when no config file is given. An
// empty HistoryFile means the per-user default path is resolved at
// REPL startup.
func Default() Options {
	return Options{
		Prompt: "> ",
		Color:  true,
	}
}

// Load reads options from a file, detecting the format from its
// extension. Keys absent from the file keep their default values.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}
	return LoadString(string(data), detectFormat(path))
}

// LoadString parses options from source text in the given format.
// FormatAuto falls back to TOML.
func LoadString(src string, format Format) (Options, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	opts := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(src), &opts); err != nil {
			return Options{}, fmt.Errorf("toml parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(src), &opts); err != nil {
			return Options{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return Options{}, fmt.Errorf("unsupported config format: %s", format)
	}
	return opts, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
