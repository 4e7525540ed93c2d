//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"golife/internal/core"
)

// HUDHeight is the height in pixels of the status strip below the grid.
const HUDHeight = 18

// HUD renders the generation and population strip below the simulation view.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Draw paints the status strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil {
		return
	}
	width := screen.Bounds().Dx()
	if width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, Status(h.sim), face, 4, HUDHeight-5, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
