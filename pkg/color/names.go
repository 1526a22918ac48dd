package color

import (
	"sort"
	"strconv"
	"strings"
)

// standardNames are the eight ANSI color names and their bright variants.
// They take precedence over the xterm names below, which reuse some of the
// same words for different slots (xterm calls slot 9 "Red").
var standardNames = map[string]uint8{
	"black":         0,
	"red":           1,
	"green":         2,
	"yellow":        3,
	"blue":          4,
	"magenta":       5,
	"cyan":          6,
	"white":         7,
	"brightblack":   8,
	"brightred":     9,
	"brightgreen":   10,
	"brightyellow":  11,
	"brightblue":    12,
	"brightmagenta": 13,
	"brightcyan":    14,
	"brightwhite":   15,
}

// xtermNames lists the conventional xterm name of every palette slot.
// Several slots share a name; the lowest slot wins.
var xtermNames = [256]string{
	"Black", "Maroon", "Green", "Olive", "Navy", "Purple", "Teal", "Silver",
	"Grey", "Red", "Lime", "Yellow", "Blue", "Fuchsia", "Aqua", "White",
	"Grey0", "NavyBlue", "DarkBlue", "Blue3", "Blue3", "Blue1", "DarkGreen", "DeepSkyBlue4",
	"DeepSkyBlue4", "DeepSkyBlue4", "DodgerBlue3", "DodgerBlue2", "Green4", "SpringGreen4", "Turquoise4", "DeepSkyBlue3",
	"DeepSkyBlue3", "DodgerBlue1", "Green3", "SpringGreen3", "DarkCyan", "LightSeaGreen", "DeepSkyBlue2", "DeepSkyBlue1",
	"Green3", "SpringGreen3", "SpringGreen2", "Cyan3", "DarkTurquoise", "Turquoise2", "Green1", "SpringGreen2",
	"SpringGreen1", "MediumSpringGreen", "Cyan2", "Cyan1", "DarkRed", "DeepPink4", "Purple4", "Purple4",
	"Purple3", "BlueViolet", "Orange4", "Grey37", "MediumPurple4", "SlateBlue3", "SlateBlue3", "RoyalBlue1",
	"Chartreuse4", "DarkSeaGreen4", "PaleTurquoise4", "SteelBlue", "SteelBlue3", "CornflowerBlue", "Chartreuse3", "DarkSeaGreen4",
	"CadetBlue", "CadetBlue", "SkyBlue3", "SteelBlue1", "Chartreuse3", "PaleGreen3", "SeaGreen3", "Aquamarine3",
	"MediumTurquoise", "SteelBlue1", "Chartreuse2", "SeaGreen2", "SeaGreen1", "SeaGreen1", "Aquamarine1", "DarkSlateGray2",
	"DarkRed", "DeepPink4", "DarkMagenta", "DarkMagenta", "DarkViolet", "Purple", "Orange4", "LightPink4",
	"Plum4", "MediumPurple3", "MediumPurple3", "SlateBlue1", "Yellow4", "Wheat4", "Grey53", "LightSlateGrey",
	"MediumPurple", "LightSlateBlue", "Yellow4", "DarkOliveGreen3", "DarkSeaGreen", "LightSkyBlue3", "LightSkyBlue3", "SkyBlue2",
	"Chartreuse2", "DarkOliveGreen3", "PaleGreen3", "DarkSeaGreen3", "DarkSlateGray3", "SkyBlue1", "Chartreuse1", "LightGreen",
	"LightGreen", "PaleGreen1", "Aquamarine1", "DarkSlateGray1", "Red3", "DeepPink4", "MediumVioletRed", "Magenta3",
	"DarkViolet", "Purple", "DarkOrange3", "IndianRed", "HotPink3", "MediumOrchid3", "MediumOrchid", "MediumPurple2",
	"DarkGoldenrod", "LightSalmon3", "RosyBrown", "Grey63", "MediumPurple2", "MediumPurple1", "Gold3", "DarkKhaki",
	"NavajoWhite3", "Grey69", "LightSteelBlue3", "LightSteelBlue", "Yellow3", "DarkOliveGreen3", "DarkSeaGreen3", "DarkSeaGreen2",
	"LightCyan3", "LightSkyBlue1", "GreenYellow", "DarkOliveGreen2", "PaleGreen1", "DarkSeaGreen2", "DarkSeaGreen1", "PaleTurquoise1",
	"Red3", "DeepPink3", "DeepPink3", "Magenta3", "Magenta3", "Magenta2", "DarkOrange3", "IndianRed",
	"HotPink3", "HotPink2", "Orchid", "MediumOrchid1", "Orange3", "LightSalmon3", "LightPink3", "Pink3",
	"Plum3", "Violet", "Gold3", "LightGoldenrod3", "Tan", "MistyRose3", "Thistle3", "Plum2",
	"Yellow3", "Khaki3", "LightGoldenrod2", "LightYellow3", "Grey84", "LightSteelBlue1", "Yellow2", "DarkOliveGreen1",
	"DarkOliveGreen1", "DarkSeaGreen1", "Honeydew2", "LightCyan1", "Red1", "DeepPink2", "DeepPink1", "DeepPink1",
	"Magenta2", "Magenta1", "OrangeRed1", "IndianRed1", "IndianRed1", "HotPink", "HotPink", "MediumOrchid1",
	"DarkOrange", "Salmon1", "LightCoral", "PaleVioletRed1", "Orchid2", "Orchid1", "Orange1", "SandyBrown",
	"LightSalmon1", "LightPink1", "Pink1", "Plum1", "Gold1", "LightGoldenrod2", "LightGoldenrod2", "NavajoWhite1",
	"MistyRose1", "Thistle1", "Yellow1", "LightGoldenrod1", "Khaki1", "Wheat1", "Cornsilk1", "Grey100",
	"Grey3", "Grey7", "Grey11", "Grey15", "Grey19", "Grey23", "Grey27", "Grey30",
	"Grey35", "Grey39", "Grey42", "Grey46", "Grey50", "Grey54", "Grey58", "Grey62",
	"Grey66", "Grey70", "Grey74", "Grey78", "Grey82", "Grey85", "Grey89", "Grey93",
}

// names maps a normalized color name to its palette slot.
var names = buildNames()

func buildNames() map[string]uint8 {
	m := make(map[string]uint8, len(xtermNames)+len(standardNames))
	for name, n := range standardNames {
		m[name] = n
	}
	for i, name := range xtermNames {
		key := normalizeName(name)
		if _, taken := m[key]; !taken {
			m[key] = uint8(i)
		}
	}
	return m
}

// normalizeName folds case and drops the separators people put between
// words, so "Bright_Red", "bright-red" and "brightred" are the same name.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

func lookupName(name string) (uint8, bool) {
	key := normalizeName(name)
	if key == "" {
		return 0, false
	}
	if n, ok := names[key]; ok {
		return n, true
	}
	// American spelling of the grey ramp and slate names
	if strings.Contains(key, "gray") {
		n, ok := names[strings.ReplaceAll(key, "gray", "grey")]
		return n, ok
	}
	return 0, false
}

// Names returns every recognised color name, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NameOf returns the canonical xterm name of palette slot n, in lower case.
func NameOf(n uint8) string {
	return strings.ToLower(xtermNames[n])
}

// TagName returns a color word that resolves to slot n: the standard name
// for the first 16 slots, the xterm name when no lower slot shares it, and
// color(n) otherwise.
func TagName(n uint8) string {
	for name, i := range standardNames {
		if i == n {
			return name
		}
	}
	name := NameOf(n)
	if i, ok := names[normalizeName(name)]; ok && i == n {
		return name
	}
	return "color(" + strconv.Itoa(int(n)) + ")"
}
