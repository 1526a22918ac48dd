package pihello

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pihello/pkg/config"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd(t *testing.T) {
	setupTest(t)

	t.Run("built-in template", func(t *testing.T) {
		out, err := execute(t, nil, "check", "--sample")
		require.NoError(t, err)
		assert.Equal(t, "✓ default renders: 6 lines, 13 variables available\n", out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := execute(t, strings.NewReader("a\n[bold]{x}[]\n"), "check", "-t", "-", "--set", "x=1")
		require.NoError(t, err)
		assert.Equal(t, "✓ stdin renders: 2 lines, 1 variables available\n", out)
	})

	t.Run("missing variable", func(t *testing.T) {
		out, err := execute(t, nil, "check")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTagParse))
		assert.Empty(t, out)
	})
}

func TestColorsCmd(t *testing.T) {
	setupTest(t)

	t.Run("filter", func(t *testing.T) {
		out, err := execute(t, nil, "colors", "blue3", "--color=never")
		require.NoError(t, err)

		assert.Contains(t, out, "Index")
		assert.Contains(t, out, "blue3")
		assert.Contains(t, out, "#0000af")
		assert.Contains(t, out, "color(20)")
		assert.Contains(t, out, "#0000d7")
		assert.NotContains(t, out, "Swatch")
		assert.NotContains(t, out, "#ff0000")
	})

	t.Run("swatches", func(t *testing.T) {
		out, err := execute(t, nil, "colors", "grey37", "--color=always")
		require.NoError(t, err)
		assert.Contains(t, out, "Swatch")
		assert.Contains(t, out, "\x1b[0m\x1b[48;5;59m")
	})

	t.Run("no match", func(t *testing.T) {
		out, err := execute(t, nil, "colors", "chartreuse9")
		require.NoError(t, err)
		assert.Equal(t, "No colors match \"chartreuse9\".\n", out)
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := execute(t, nil, "colors", "--color=sometimes")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestColorRows(t *testing.T) {
	rows, err := colorRows("", false)
	require.NoError(t, err)
	require.Len(t, rows, 257)
	assert.Equal(t, []string{"0", "black", "black", "#000000"}, rows[1])
	assert.Equal(t, []string{"9", "brightred", "red", "#ff0000"}, rows[10])
	assert.Equal(t, []string{"255", "grey93", "grey93", "#eeeeee"}, rows[256])
}

func TestConfigCmd(t *testing.T) {
	setupTest(t)

	t.Run("effective", func(t *testing.T) {
		out, err := execute(t, nil, "config", "--width", "100")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# sources: defaults, flags\n"), out)
		assert.Contains(t, out, "width = 100")
		assert.Regexp(t, `template = ['"]default['"]`, out)
	})

	t.Run("defaults", func(t *testing.T) {
		out, err := execute(t, nil, "config", "--defaults")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultsTOML(), out)
	})
}

func TestVersionCmd(t *testing.T) {
	setupTest(t)

	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "pihello version dev\n  commit: unknown\n  built:  unknown\n", out)
}

func TestCompletionCmd(t *testing.T) {
	setupTest(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, nil, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "pihello")
		})
	}

	_, err := execute(t, nil, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	setupTest(t)
	dir := t.TempDir()

	out, err := execute(t, nil, "man", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	_, err = os.Stat(filepath.Join(dir, "pihello.1"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "pihello-colors.1"))
	assert.NoError(t, err)
}

func TestHelpTopics(t *testing.T) {
	setupTest(t)

	out, err := execute(t, nil, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "  markup\n")
	assert.Contains(t, out, "  --timestamp\n")
	assert.Contains(t, out, "  --clip\n")

	out, err = execute(t, nil, "help", "markup")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "tag")
}
