package config

import (
	"strings"

	"github.com/arthur-debert/pihello/pkg/console"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective pihello configuration.
type Config struct {
	Template  string          `koanf:"template" toml:"template"`
	Variables []string        `koanf:"variables" toml:"variables"`
	Theme     string          `koanf:"theme" toml:"theme"`
	Console   ConsoleConfig   `koanf:"console" toml:"console"`
	Output    OutputConfig    `koanf:"output" toml:"output"`
	Timestamp TimestampConfig `koanf:"timestamp" toml:"timestamp"`

	// Sources lists the layers that contributed, in load order.
	Sources []string `koanf:"-" toml:"-"`
}

// ConsoleConfig sizes the output.
type ConsoleConfig struct {
	Width   int    `koanf:"width" toml:"width"`
	Height  int    `koanf:"height" toml:"height"`
	TabSize int    `koanf:"tabsize" toml:"tabsize"`
	Clip    bool   `koanf:"clip" toml:"clip"`
	Sep     string `koanf:"sep" toml:"sep"`
	End     string `koanf:"end" toml:"end"`
}

// OutputConfig controls escape sequences.
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// TimestampConfig controls the optional first line.
type TimestampConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Format  string `koanf:"format" toml:"format"`
}

// Validate checks values no decoder can.
func (c *Config) Validate() error {
	if c.Console.Width < 0 {
		return errors.Newf(errors.ErrConfigParse, "console.width must be >= 0, got %d", c.Console.Width).
			WithDetail("key", "console.width")
	}
	if c.Console.Height < 0 {
		return errors.Newf(errors.ErrConfigParse, "console.height must be >= 0, got %d", c.Console.Height).
			WithDetail("key", "console.height")
	}
	if c.Console.TabSize < 0 {
		return errors.Newf(errors.ErrConfigParse, "console.tabsize must be >= 0, got %d", c.Console.TabSize).
			WithDetail("key", "console.tabsize")
	}
	if _, err := console.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid output.color %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}

// ColorMode returns the parsed output.color.
func (c *Config) ColorMode() console.ColorMode {
	m, _ := console.ParseColorMode(c.Output.Color)
	return m
}

// ConsoleOptions converts the console section into console.Options. Output,
// styles and variables are left for the caller.
func (c *Config) ConsoleOptions() console.Options {
	return console.Options{
		Width:   c.Console.Width,
		Height:  c.Console.Height,
		TabSize: c.Console.TabSize,
		Clip:    c.Console.Clip,
		Sep:     c.Console.Sep,
		End:     c.Console.End,
		Color:   c.ColorMode(),
	}
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return b.String(), nil
}
