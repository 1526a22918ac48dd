package style_test

import (
	"testing"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/style"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := style.DefaultTheme()
	assert.Equal(t, "default", theme.Name)
	assert.Contains(t, theme.Aliases, "title")
	assert.Contains(t, theme.Aliases, "muted")

	r, err := theme.Resolver()
	require.NoError(t, err)
	for _, alias := range r.Aliases() {
		_, err := r.Render(alias)
		assert.NoError(t, err, alias)
	}
}

func TestLoadTheme(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		theme, err := style.LoadTheme([]byte("name: mine\naliases:\n  ok: bold green\n"))
		require.NoError(t, err)
		assert.Equal(t, "mine", theme.Name)
		assert.Equal(t, "bold green", theme.Aliases["ok"])
	})

	t.Run("no aliases", func(t *testing.T) {
		theme, err := style.LoadTheme([]byte("name: bare\n"))
		require.NoError(t, err)
		assert.Empty(t, theme.Aliases)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := style.LoadTheme([]byte("aliases: [unclosed"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
	})

	t.Run("invalid alias body", func(t *testing.T) {
		_, err := style.LoadTheme([]byte("aliases:\n  bad: rgb(1,2)\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
	})
}

func TestLoadThemeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/dark.yaml", []byte("name: dark\naliases:\n  accent: color(33)\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/themes/broken.yaml", []byte("aliases:\n  x: nope\n"), 0644))

	t.Run("reads theme", func(t *testing.T) {
		theme, err := style.LoadThemeFile(fs, "/themes/dark.yaml")
		require.NoError(t, err)
		assert.Equal(t, "color(33)", theme.Aliases["accent"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := style.LoadThemeFile(fs, "/themes/none.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("invalid theme carries path", func(t *testing.T) {
		_, err := style.LoadThemeFile(fs, "/themes/broken.yaml")
		require.Error(t, err)
		assert.Equal(t, "/themes/broken.yaml", errors.GetErrorDetails(err)["path"])
	})
}

func TestThemeMerge(t *testing.T) {
	base := &style.Theme{Name: "base", Aliases: map[string]string{"a": "red", "b": "blue"}}
	over := &style.Theme{Name: "over", Aliases: map[string]string{"b": "green", "c": "bold"}}

	merged := base.Merge(over)
	assert.Equal(t, "over", merged.Name)
	assert.Equal(t, map[string]string{"a": "red", "b": "green", "c": "bold"}, merged.Aliases)
	assert.Equal(t, "blue", base.Aliases["b"], "merge must not mutate the receiver")

	assert.Equal(t, base.Aliases, base.Merge(nil).Aliases)
}
