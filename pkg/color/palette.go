package color

// PaletteSize is the number of palette slots.
const PaletteSize = 256

// palette holds the xterm 256-color palette: the 16 system colors, the
// 6x6x6 color cube and the 24-step grey ramp.
var palette = buildPalette()

// PaletteRGB returns the triplet of palette slot n.
func PaletteRGB(n uint8) RGB {
	return palette[n]
}

var systemColors = [16]RGB{
	{0x00, 0x00, 0x00},
	{0x80, 0x00, 0x00},
	{0x00, 0x80, 0x00},
	{0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80},
	{0x80, 0x00, 0x80},
	{0x00, 0x80, 0x80},
	{0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80},
	{0xff, 0x00, 0x00},
	{0x00, 0xff, 0x00},
	{0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff},
	{0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff},
	{0xff, 0xff, 0xff},
}

var cubeSteps = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func buildPalette() [PaletteSize]RGB {
	var p [PaletteSize]RGB
	copy(p[:16], systemColors[:])
	for i := 16; i < 232; i++ {
		n := i - 16
		p[i] = RGB{cubeSteps[n/36], cubeSteps[(n/6)%6], cubeSteps[n%6]}
	}
	for i := 232; i < 256; i++ {
		grey := uint8(8 + (i-232)*10)
		p[i] = RGB{grey, grey, grey}
	}
	return p
}
