package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// fade lifts a black overlay off the screen over a fixed number of ticks.
// It plays whenever a level is (re)started.
type fade struct {
	frames   int
	duration int
	overlay  *ebiten.Image
}

func newFade(duration int) *fade {
	return &fade{duration: duration}
}

// Start shows the overlay at full opacity.
func (f *fade) Start() {
	f.frames = f.duration
}

func (f *fade) Active() bool {
	return f.frames > 0
}

// Update advances the fade by one tick.
func (f *fade) Update() {
	if f.frames > 0 {
		f.frames--
	}
}

// Alpha is the current overlay opacity in [0,1].
func (f *fade) Alpha() float32 {
	if f.duration <= 0 {
		return 0
	}
	return float32(f.frames) / float32(f.duration)
}

func (f *fade) Draw(screen *ebiten.Image) {
	alpha := f.Alpha()
	if alpha <= 0 {
		return
	}
	if f.overlay == nil {
		f.overlay = ebiten.NewImage(1, 1)
		f.overlay.Fill(color.White)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.Scale(0, 0, 0, alpha)
	screen.DrawImage(f.overlay, op)
}
