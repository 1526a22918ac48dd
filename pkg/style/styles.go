package style

import (
	"sort"
	"strconv"
)

// Attribute is an SGR text attribute.
type Attribute int

// Text attributes and their SGR codes
const (
	Bold            Attribute = 1
	Faint           Attribute = 2
	Italic          Attribute = 3
	Underline       Attribute = 4
	Blink           Attribute = 5
	FastBlink       Attribute = 6
	Reverse         Attribute = 7
	Hide            Attribute = 8
	Strike          Attribute = 9
	Normal          Attribute = 10
	DoubleUnderline Attribute = 21
)

// attributeNames maps tag keywords to attributes. fblink and dunderline are
// the spellings older templates use.
var attributeNames = map[string]Attribute{
	"bold":             Bold,
	"faint":            Faint,
	"italic":           Italic,
	"underline":        Underline,
	"blink":            Blink,
	"fast-blink":       FastBlink,
	"fblink":           FastBlink,
	"reverse":          Reverse,
	"hide":             Hide,
	"strike":           Strike,
	"normal":           Normal,
	"double-underline": DoubleUnderline,
	"dunderline":       DoubleUnderline,
}

// Code returns the SGR parameter for a.
func (a Attribute) Code() string {
	return strconv.Itoa(int(a))
}

func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case FastBlink:
		return "fast-blink"
	case Reverse:
		return "reverse"
	case Hide:
		return "hide"
	case Strike:
		return "strike"
	case Normal:
		return "normal"
	case DoubleUnderline:
		return "double-underline"
	}
	return "attribute(" + strconv.Itoa(int(a)) + ")"
}

// LookupAttribute returns the attribute named by keyword.
func LookupAttribute(keyword string) (Attribute, bool) {
	a, ok := attributeNames[keyword]
	return a, ok
}

// Keywords returns every attribute keyword, sorted.
func Keywords() []string {
	out := make([]string, 0, len(attributeNames))
	for k := range attributeNames {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
