package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TestEnvironment keeps a test away from the user's configuration, logs and
// files.
type TestEnvironment struct {
	ConfigHome string
	StateHome  string

	// FS holds templates, variable files and themes
	FS afero.Fs

	t *testing.T
}

// NewTestEnvironment points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temp
// directories.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		FS:         afero.NewMemMapFs(),
		t:          t,
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "")
	return env
}

// WriteFile writes content to path in the in-memory filesystem.
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()

	if err := afero.WriteFile(e.FS, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ConfigFile returns where the user config file is looked up.
func (e *TestEnvironment) ConfigFile() string {
	return filepath.Join(e.ConfigHome, "pihello", "config.toml")
}

// WriteConfig writes the user config file.
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigHome, filepath.Join("pihello", "config.toml"), content)
}

// LogFile returns where pihello writes its log.
func (e *TestEnvironment) LogFile() string {
	return filepath.Join(e.StateHome, "pihello", "pihello.log")
}
