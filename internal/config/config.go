package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "coolc.yaml"

// Stage selects how far the front-end runs.
type Stage string

const (
	StageLex    Stage = "lex"
	StageParse  Stage = "parse"
	StageSemant Stage = "semant"
)

// ColorMode controls colored diagnostics.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Format selects the AST dump format.
type Format string

const (
	FormatTree Format = "tree"
	FormatYAML Format = "yaml"
)

// Config holds driver settings. Zero values are replaced by Default().
type Config struct {
	LogLevel string    `yaml:"log_level"`
	LogJSON  bool      `yaml:"log_json"`
	Jobs     int       `yaml:"jobs"`
	Color    ColorMode `yaml:"color"`
	Stage    Stage     `yaml:"stage"`
	Format   Format    `yaml:"format"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Jobs:     runtime.NumCPU(),
		Color:    ColorAuto,
		Stage:    StageSemant,
		Format:   FormatTree,
	}
}

// Load reads a YAML config file. A missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML settings on top of the defaults and validates them.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and fills in empty ones.
func (c *Config) Validate() error {
	def := Default()
	if c.Jobs <= 0 {
		c.Jobs = def.Jobs
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	switch c.Color {
	case "":
		c.Color = def.Color
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid color mode %q", c.Color)
	}
	switch c.Stage {
	case "":
		c.Stage = def.Stage
	case StageLex, StageParse, StageSemant:
	default:
		return errors.Errorf("invalid stage %q", c.Stage)
	}
	switch c.Format {
	case "":
		c.Format = def.Format
	case FormatTree, FormatYAML:
	default:
		return errors.Errorf("invalid format %q", c.Format)
	}
	return nil
}
