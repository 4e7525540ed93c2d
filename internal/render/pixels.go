package render

import (
	"image"
	"image/color"

	"golife/internal/core"
)

// Palette holds the two colours a binary grid is drawn with.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{On: color.White, Off: color.Black}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != core.Dead {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Frame draws g as a paletted image with each cell scale*scale pixels.
// Palette index 0 is the dead colour and 1 the live colour.
func Frame(g *core.Grid, pal Palette, scale int) *image.Paletted {
	if scale <= 0 {
		scale = 1
	}
	side := g.N * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{pal.Off, pal.On})
	cells := g.Cells()
	for y := 0; y < side; y++ {
		row := cells[(y/scale)*g.N : (y/scale+1)*g.N]
		line := img.Pix[y*img.Stride : y*img.Stride+side]
		for x := range line {
			line[x] = row[x/scale]
		}
	}
	return img
}
