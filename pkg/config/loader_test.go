package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pihello/pkg/console"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeUserConfig(t *testing.T, home, content string) string {
	t.Helper()
	path := filepath.Join(home, "pihello", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Template)
	assert.Empty(t, cfg.Variables)
	assert.Equal(t, "", cfg.Theme)
	assert.Equal(t, ConsoleConfig{Width: 80, Height: 25, TabSize: 4, Sep: " ", End: "\n"}, cfg.Console)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Timestamp.Enabled)
	assert.Equal(t, "%Y-%m-%d %H:%M:%S", cfg.Timestamp.Format)
	assert.Equal(t, []string{"defaults"}, cfg.Sources)
}

func TestLoadUserFile(t *testing.T) {
	home := isolate(t)
	path := writeUserConfig(t, home, `
template = "/etc/motd.tmpl"
variables = ["/var/cache/pihole/summary.toml"]

[console]
width = 120
clip = true

[output]
color = "always"
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "/etc/motd.tmpl", cfg.Template)
	assert.Equal(t, []string{"/var/cache/pihole/summary.toml"}, cfg.Variables)
	assert.Equal(t, 120, cfg.Console.Width)
	assert.Equal(t, 25, cfg.Console.Height, "unset keys keep defaults")
	assert.True(t, cfg.Console.Clip)
	assert.Equal(t, console.ColorAlways, cfg.ColorMode())
	assert.Equal(t, []string{"defaults", path}, cfg.Sources)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"dark.yaml\"\n"), 0644))

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "dark.yaml", cfg.Theme)

	_, err = Load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	home := isolate(t)
	writeUserConfig(t, home, "[console\nwidth = ")

	_, err := Load(Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PIHELLO_CONSOLE_WIDTH", "100")
	t.Setenv("PIHELLO_CONSOLE_CLIP", "true")
	t.Setenv("PIHELLO_OUTPUT_COLOR", "never")
	t.Setenv("PIHELLO_VARIABLES", "a.toml,b.yaml")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Console.Width)
	assert.True(t, cfg.Console.Clip)
	assert.Equal(t, console.ColorNever, cfg.ColorMode())
	assert.Equal(t, []string{"a.toml", "b.yaml"}, cfg.Variables)
	assert.Contains(t, cfg.Sources, "env")
}

func TestLoadOverridesWin(t *testing.T) {
	home := isolate(t)
	writeUserConfig(t, home, "[console]\nwidth = 120\n")
	t.Setenv("PIHELLO_CONSOLE_WIDTH", "100")

	cfg, err := Load(Options{Overrides: map[string]interface{}{
		"console.width":     60,
		"timestamp.enabled": true,
		"timestamp.format":  "%H:%M",
	}})
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Console.Width)
	assert.True(t, cfg.Timestamp.Enabled)
	assert.Equal(t, "%H:%M", cfg.Timestamp.Format)
	assert.Equal(t, "flags", cfg.Sources[len(cfg.Sources)-1])
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		key       string
	}{
		{"negative width", map[string]interface{}{"console.width": -1}, "console.width"},
		{"negative height", map[string]interface{}{"console.height": -3}, "console.height"},
		{"negative tab size", map[string]interface{}{"console.tabsize": -2}, "console.tabsize"},
		{"bad color", map[string]interface{}{"output.color": "rainbow"}, "output.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(Options{Overrides: tt.overrides})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestDefaultConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "pihello", "config.toml"), DefaultConfigFile())
}
