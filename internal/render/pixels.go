package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// EdgePalette maps the three edge colours to display colours.
var EdgePalette = []color.RGBA{
	{R: 0xe0, G: 0x4f, B: 0x5f, A: 0xff},
	{R: 0x4f, G: 0xc0, B: 0x6a, A: 0xff},
	{R: 0x4f, G: 0x7c, B: 0xe0, A: 0xff},
}

// Hex renders c as "#rrggbb". Fully transparent colours render as black.
func Hex(c color.RGBA) string {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return col.Hex()
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
