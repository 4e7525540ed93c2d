package render

import (
	"image/color"
	"testing"

	"golife/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{core.Alive, core.Dead}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)

	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf=%v)", i, buf[i], want[i], buf)
		}
	}
}

func TestFrameScalesCells(t *testing.T) {
	g, _ := core.NewGrid(3)
	g.Set(0, 2, true)
	g.Set(2, 0, true)

	img := Frame(g, DefaultPalette(), 4)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("frame bounds %v, want 12x12", b)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := uint8(0)
			if g.IsAlive(y/4, x/4) {
				want = 1
			}
			if got := img.ColorIndexAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) index %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFrameDefaultsScale(t *testing.T) {
	g, _ := core.NewGrid(5)
	if b := Frame(g, DefaultPalette(), 0).Bounds(); b.Dx() != 5 {
		t.Fatalf("scale 0 should draw 1 pixel per cell, got width %d", b.Dx())
	}
}
