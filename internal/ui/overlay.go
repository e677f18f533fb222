//go:build ebiten

package ui

import (
	"strings"

	"honeycomb/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints the run status over the lattice view. H toggles it.
type Overlay struct {
	sim   core.Sim
	shown bool
	text  string
}

// NewOverlay constructs an overlay for sim, initially shown.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, shown: true}
}

// Update refreshes the panel text and handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.shown = !o.shown
	}
	if o.shown {
		o.text = strings.Join(Lines(o.sim), "\n")
	}
}

// Draw prints the panel in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.shown {
		return
	}
	ebitenutil.DebugPrintAt(screen, o.text, 4, 4)
}
