package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

// statusLine is the text shown along the bottom of the screen.
func statusLine(g *Game) string {
	switch g.state {
	case GameWin:
		return fmt.Sprintf("Level %d cleared! Press 1-%d to pick a level", g.level+1, min(len(g.levels), 4))
	case GameMenu:
		return fmt.Sprintf("Press 1-%d to pick a level", min(len(g.levels), 4))
	}
	line := fmt.Sprintf("Level %d/%d    Bricks %d", g.level+1, len(g.levels), g.CurrentLevel().Remaining())
	if g.ball.IsStuck() {
		line += "    SPACE to launch"
	}
	return line
}

func (h *hud) Draw(screen *ebiten.Image, g *Game) {
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    State: %s", g.frames, ebiten.ActualFPS(), g.state))
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(g.height)-16)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, statusLine(g), h.face, op)
}
