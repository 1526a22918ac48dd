package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies how a Color addresses the terminal palette.
type Kind uint8

const (
	KindDefault Kind = iota
	KindNamed
	KindIndexed
	KindTruecolor
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindNamed:
		return "named"
	case KindIndexed:
		return "indexed"
	case KindTruecolor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// Target selects which SGR color slot a Color is rendered into.
type Target uint8

const (
	Foreground Target = iota
	Background
	Underline
)

// RGB is a 24-bit color triplet.
type RGB struct {
	R, G, B uint8
}

// Hex returns the triplet as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Color is an immutable terminal color. Use Parse, Default, FromIndex or
// FromRGB to build one; the zero value is the default color.
type Color struct {
	kind  Kind
	name  string
	index uint8
	rgb   RGB
}

var reColor = regexp.MustCompile(`^#([0-9a-f]{6}|[0-9a-f]{3})$|^color\(([0-9]{1,3})\)$|^rgb\(([\d\s,]+)\)$`)

// Default returns the terminal's default color.
func Default() Color {
	return Color{kind: KindDefault, name: "default"}
}

// FromIndex returns an indexed color addressing palette slot n.
func FromIndex(n uint8) Color {
	return Color{kind: KindIndexed, name: fmt.Sprintf("color(%d)", n), index: n}
}

// FromRGB returns a truecolor color.
func FromRGB(r, g, b uint8) Color {
	return Color{kind: KindTruecolor, name: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b), rgb: RGB{r, g, b}}
}

// Parse parses a color specification. Accepted forms, tried in order:
// "default", a palette name, #rrggbb or #rgb, color(n) and rgb(r,g,b).
func Parse(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "default" {
		return Default(), nil
	}

	if n, ok := lookupName(s); ok {
		return Color{kind: KindNamed, name: s, index: n}, nil
	}

	m := reColor.FindStringSubmatch(s)
	if m == nil {
		return Color{}, parseError(spec, "%q is not a valid color", spec)
	}

	hex, num, components := m[1], m[2], m[3]
	switch {
	case hex != "":
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, parseError(spec, "%q is not a valid hex color", spec)
		}
		r, g, b := c.RGB255()
		return Color{kind: KindTruecolor, name: s, rgb: RGB{r, g, b}}, nil

	case num != "":
		n, _ := strconv.Atoi(num)
		if n > 255 {
			return Color{}, parseError(spec, "color number must be <= 255 in %q", spec)
		}
		return Color{kind: KindIndexed, name: s, index: uint8(n)}, nil
	}

	parts := strings.Split(components, ",")
	if len(parts) != 3 {
		return Color{}, parseError(spec, "expected three components in %q", spec)
	}
	var triplet [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, parseError(spec, "color components must be integers in %q", spec)
		}
		if v > 255 {
			return Color{}, parseError(spec, "color components must be <= 255 in %q", spec)
		}
		triplet[i] = uint8(v)
	}
	return Color{kind: KindTruecolor, name: s, rgb: RGB{triplet[0], triplet[1], triplet[2]}}, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// color constants.
func MustParse(spec string) Color {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func parseError(spec string, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrColorParse, format, args...).WithDetail("spec", spec)
}

// Kind returns how the color addresses the palette.
func (c Color) Kind() Kind { return c.kind }

// Name returns the string the color was parsed from.
func (c Color) Name() string {
	if c.kind == KindDefault {
		return "default"
	}
	return c.name
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool { return c.kind == KindDefault }

// Index returns the palette slot of a named or indexed color.
func (c Color) Index() (uint8, bool) {
	if c.kind == KindNamed || c.kind == KindIndexed {
		return c.index, true
	}
	return 0, false
}

// Truecolor returns an equivalent RGB triplet. Palette colors are resolved
// through the xterm palette; the default color has none.
func (c Color) Truecolor() (RGB, bool) {
	switch c.kind {
	case KindNamed, KindIndexed:
		return palette[c.index], true
	case KindTruecolor:
		return c.rgb, true
	default:
		return RGB{}, false
	}
}

// Codes returns the SGR parameters selecting c for the given target.
func (c Color) Codes(target Target) []string {
	switch c.kind {
	case KindDefault:
		switch target {
		case Background:
			return []string{"49"}
		case Underline:
			return []string{"59"}
		default:
			return []string{"39"}
		}

	case KindNamed, KindIndexed:
		if c.index < 16 && target != Underline {
			fore, back := 30, 40
			if c.index >= 8 {
				fore, back = 82, 92
			}
			if target == Background {
				return []string{strconv.Itoa(back + int(c.index))}
			}
			return []string{strconv.Itoa(fore + int(c.index))}
		}
		return []string{extendedCode(target), "5", strconv.Itoa(int(c.index))}
	}

	return []string{
		extendedCode(target), "2",
		strconv.Itoa(int(c.rgb.R)),
		strconv.Itoa(int(c.rgb.G)),
		strconv.Itoa(int(c.rgb.B)),
	}
}

func extendedCode(target Target) string {
	switch target {
	case Background:
		return "48"
	case Underline:
		return "58"
	default:
		return "38"
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("<color %s (%s)>", c.Name(), c.kind)
}
