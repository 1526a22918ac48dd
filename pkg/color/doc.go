/*
Package color resolves color specifications used in markup tags into ANSI
Select Graphic Rendition parameters.

# Specifications

Parse accepts, case-insensitively and ignoring surrounding whitespace:

	default          the terminal's default color
	red, grey37      a palette name (see Names)
	#5fd75f, #fff    24-bit hex, full or shorthand
	color(208)       a palette slot, 0..255
	rgb(95,215,95)   24-bit components, each 0..255

Anything else fails with an errors.ErrColorParse coded error.

# Rendering

Codes returns the SGR parameters for a foreground, background or underline
slot. The sixteen system colors use the compact 30-37/90-97 (40-47/100-107)
forms, other palette slots the 38;5;n family and truecolor the 38;2;r;g;b
family. Terminal capability is never checked; the richest form is emitted.
*/
package color
