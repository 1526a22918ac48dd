package color_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/pihello/pkg/color"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantKind  color.Kind
		wantIndex uint8
		wantRGB   color.RGB
	}{
		{name: "default", spec: "default", wantKind: color.KindDefault},
		{name: "default mixed case and padding", spec: "  DeFault ", wantKind: color.KindDefault},
		{name: "standard name", spec: "red", wantKind: color.KindNamed, wantIndex: 1},
		{name: "standard name upper case", spec: "BLUE", wantKind: color.KindNamed, wantIndex: 4},
		{name: "bright name with underscore", spec: "bright_red", wantKind: color.KindNamed, wantIndex: 9},
		{name: "bright name with dash", spec: "bright-white", wantKind: color.KindNamed, wantIndex: 15},
		{name: "system html name", spec: "fuchsia", wantKind: color.KindNamed, wantIndex: 13},
		{name: "xterm name", spec: "cyan2", wantKind: color.KindNamed, wantIndex: 50},
		{name: "xterm duplicate takes lowest slot", spec: "lightgreen", wantKind: color.KindNamed, wantIndex: 119},
		{name: "grey ramp", spec: "grey50", wantKind: color.KindNamed, wantIndex: 244},
		{name: "gray spelling", spec: "gray37", wantKind: color.KindNamed, wantIndex: 59},
		{name: "hex", spec: "#5fd75f", wantKind: color.KindTruecolor, wantRGB: color.RGB{R: 0x5f, G: 0xd7, B: 0x5f}},
		{name: "hex upper case", spec: "#FF8000", wantKind: color.KindTruecolor, wantRGB: color.RGB{R: 0xff, G: 0x80, B: 0x00}},
		{name: "hex shorthand", spec: "#fa0", wantKind: color.KindTruecolor, wantRGB: color.RGB{R: 0xff, G: 0xaa, B: 0x00}},
		{name: "color number", spec: "color(208)", wantKind: color.KindIndexed, wantIndex: 208},
		{name: "rgb", spec: "rgb(1,2,3)", wantKind: color.KindTruecolor, wantRGB: color.RGB{R: 1, G: 2, B: 3}},
		{name: "rgb with spaces", spec: "rgb( 10, 20 ,30 )", wantKind: color.KindTruecolor, wantRGB: color.RGB{R: 10, G: 20, B: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := color.Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind())

			switch tt.wantKind {
			case color.KindNamed, color.KindIndexed:
				n, ok := c.Index()
				require.True(t, ok)
				assert.Equal(t, tt.wantIndex, n)
			case color.KindTruecolor:
				rgb, ok := c.Truecolor()
				require.True(t, ok)
				assert.Equal(t, tt.wantRGB, rgb)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "unknown name", spec: "notacolor"},
		{name: "hex too short", spec: "#12345"},
		{name: "hex too long", spec: "#1234567"},
		{name: "hex bad digit", spec: "#12345g"},
		{name: "color out of range", spec: "color(256)"},
		{name: "color too many digits", spec: "color(1000)"},
		{name: "color negative", spec: "color(-1)"},
		{name: "rgb two components", spec: "rgb(1,2)"},
		{name: "rgb four components", spec: "rgb(1,2,3,4)"},
		{name: "rgb component out of range", spec: "rgb(1,2,256)"},
		{name: "rgb empty component", spec: "rgb(1,,3)"},
		{name: "trailing garbage", spec: "color(1)x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := color.Parse(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrColorParse), "got %v", err)
			assert.Equal(t, tt.spec, errors.GetErrorDetails(err)["spec"])
		})
	}
}

func TestParseEveryIndex(t *testing.T) {
	for n := 0; n < 256; n++ {
		c, err := color.Parse(fmt.Sprintf("color(%d)", n))
		require.NoError(t, err)
		idx, ok := c.Index()
		require.True(t, ok)
		assert.Equal(t, uint8(n), idx)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, v := range []int{0x00, 0x01, 0x7f, 0x80, 0xaa, 0xfe, 0xff} {
		spec := fmt.Sprintf("#%02x%02x%02x", v, 255-v, v/2)
		c, err := color.Parse(spec)
		require.NoError(t, err)

		rgb, ok := c.Truecolor()
		require.True(t, ok)
		assert.Equal(t, color.RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}, rgb)
		assert.Equal(t, spec, rgb.Hex())
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name   string
		spec   string
		target color.Target
		want   string
	}{
		{name: "default fg", spec: "default", target: color.Foreground, want: "39"},
		{name: "default bg", spec: "default", target: color.Background, want: "49"},
		{name: "default underline", spec: "default", target: color.Underline, want: "59"},
		{name: "system fg", spec: "red", target: color.Foreground, want: "31"},
		{name: "system bg", spec: "red", target: color.Background, want: "41"},
		{name: "bright fg", spec: "brightred", target: color.Foreground, want: "91"},
		{name: "bright bg", spec: "brightwhite", target: color.Background, want: "107"},
		{name: "system underline uses extended form", spec: "red", target: color.Underline, want: "58;5;1"},
		{name: "indexed fg", spec: "color(208)", target: color.Foreground, want: "38;5;208"},
		{name: "indexed bg", spec: "grey37", target: color.Background, want: "48;5;59"},
		{name: "indexed underline", spec: "color(16)", target: color.Underline, want: "58;5;16"},
		{name: "indexed low slot is compact", spec: "color(7)", target: color.Foreground, want: "37"},
		{name: "truecolor fg", spec: "rgb(1,2,3)", target: color.Foreground, want: "38;2;1;2;3"},
		{name: "truecolor bg", spec: "rgb(1,2,3)", target: color.Background, want: "48;2;1;2;3"},
		{name: "truecolor underline", spec: "#010203", target: color.Underline, want: "58;2;1;2;3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := color.MustParse(tt.spec)
			assert.Equal(t, tt.want, strings.Join(c.Codes(tt.target), ";"))
		})
	}
}

func TestTruecolor(t *testing.T) {
	t.Run("default has none", func(t *testing.T) {
		_, ok := color.Default().Truecolor()
		assert.False(t, ok)
	})

	t.Run("palette lookup", func(t *testing.T) {
		rgb, ok := color.MustParse("grey37").Truecolor()
		require.True(t, ok)
		assert.Equal(t, color.RGB{R: 0x5f, G: 0x5f, B: 0x5f}, rgb)
	})

	t.Run("grey ramp", func(t *testing.T) {
		assert.Equal(t, color.RGB{R: 0x08, G: 0x08, B: 0x08}, color.PaletteRGB(232))
		assert.Equal(t, color.RGB{R: 0xee, G: 0xee, B: 0xee}, color.PaletteRGB(255))
	})

	t.Run("cube corners", func(t *testing.T) {
		assert.Equal(t, color.RGB{}, color.PaletteRGB(16))
		assert.Equal(t, color.RGB{R: 0xff, G: 0xff, B: 0xff}, color.PaletteRGB(231))
		assert.Equal(t, color.RGB{R: 0xff, G: 0x87, B: 0x00}, color.PaletteRGB(208))
	})

	t.Run("palette slots are copies", func(t *testing.T) {
		rgb := color.PaletteRGB(9)
		rgb.R = 0
		assert.Equal(t, color.RGB{R: 0xff}, color.PaletteRGB(9))

		got, ok := color.FromIndex(9).Truecolor()
		require.True(t, ok)
		assert.Equal(t, color.RGB{R: 0xff}, got)
	})
}

func TestConstructors(t *testing.T) {
	c := color.FromIndex(42)
	assert.Equal(t, color.KindIndexed, c.Kind())
	assert.Equal(t, "color(42)", c.Name())

	c = color.FromRGB(9, 8, 7)
	assert.Equal(t, "38;2;9;8;7", strings.Join(c.Codes(color.Foreground), ";"))

	var zero color.Color
	assert.True(t, zero.IsDefault())
	assert.Equal(t, []string{"39"}, zero.Codes(color.Foreground))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { color.MustParse("nope") })
}

func TestNames(t *testing.T) {
	all := color.Names()
	assert.Contains(t, all, "red")
	assert.Contains(t, all, "seagreen1")
	assert.Contains(t, all, "brightblack")
	assert.True(t, len(all) > 200)

	assert.Equal(t, "grey37", color.NameOf(59))
	assert.Equal(t, "red", color.NameOf(9))
}

func TestTagNameResolvesToSlot(t *testing.T) {
	assert.Equal(t, "red", color.TagName(1))
	assert.Equal(t, "brightred", color.TagName(9))
	assert.Equal(t, "grey37", color.TagName(59))
	assert.Equal(t, "blue3", color.TagName(19))
	assert.Equal(t, "color(20)", color.TagName(20), "blue3 already names slot 19")

	for n := 0; n < 256; n++ {
		c, err := color.Parse(color.TagName(uint8(n)))
		require.NoError(t, err, n)
		idx, ok := c.Index()
		require.True(t, ok)
		assert.Equal(t, uint8(n), idx)
	}
}
