package style

import (
	_ "embed"
	"os"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Theme is a named set of style aliases, stored as YAML:
//
//	name: default
//	aliases:
//	  title: bold white
//	  accent: cyan2
type Theme struct {
	Name    string            `yaml:"name"`
	Aliases map[string]string `yaml:"aliases"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// DefaultTheme returns the theme shipped with pihello.
func DefaultTheme() *Theme {
	t, err := LoadTheme(embeddedTheme)
	if err != nil {
		// The embedded theme is covered by tests; an empty theme keeps
		// plain color tags working if it ever breaks.
		return &Theme{Name: "empty", Aliases: map[string]string{}}
	}
	return t
}

// LoadTheme parses a YAML theme and validates every alias.
func LoadTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeInvalid, "failed to parse theme")
	}
	if t.Aliases == nil {
		t.Aliases = map[string]string{}
	}
	if _, err := NewResolver(t.Aliases); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadThemeFile reads and parses a theme from fs.
func LoadThemeFile(fs afero.Fs, path string) (*Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "theme not found").WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read theme").WithDetail("path", path)
	}
	t, err := LoadTheme(data)
	if err != nil {
		if coded, ok := err.(*errors.Error); ok {
			coded.WithDetail("path", path)
		}
		return nil, err
	}
	return t, nil
}

// Merge returns a theme holding t's aliases overridden by other's.
func (t *Theme) Merge(other *Theme) *Theme {
	merged := &Theme{Name: t.Name, Aliases: make(map[string]string, len(t.Aliases))}
	for k, v := range t.Aliases {
		merged.Aliases[k] = v
	}
	if other == nil {
		return merged
	}
	if other.Name != "" {
		merged.Name = other.Name
	}
	for k, v := range other.Aliases {
		merged.Aliases[k] = v
	}
	return merged
}

// Resolver builds a Resolver expanding t's aliases.
func (t *Theme) Resolver() (*Resolver, error) {
	return NewResolver(t.Aliases)
}
