package resource

import (
	"testing"

	"github.com/milk9111/breakout/assets"
)

func TestEbitenBackendLoadImage(t *testing.T) {
	b := NewEbitenBackend(assets.FS())

	cases := []struct {
		path string
		w, h int
	}{
		{"textures/block.png", 32, 32},
		{"textures/paddle.png", 64, 16},
		{"textures/awesomeface.png", 64, 64},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			w, h, pix, err := b.LoadImage(c.path)
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if w != c.w || h != c.h {
				t.Fatalf("got %dx%d, want %dx%d", w, h, c.w, c.h)
			}
			if len(pix) != 4*w*h {
				t.Fatalf("got %d pixel bytes, want %d", len(pix), 4*w*h)
			}
		})
	}

	if _, _, _, err := b.LoadImage("textures/missing.png"); err == nil {
		t.Fatalf("expected error for a missing image")
	}
}

func TestEbitenBackendUploadValidation(t *testing.T) {
	b := NewEbitenBackend(assets.FS())
	if _, err := b.UploadTexture(0, 4, nil); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := b.UploadTexture(2, 2, make([]byte, 3)); err == nil {
		t.Fatalf("expected error for short pixel buffer")
	}
}

func TestEbitenBackendReadShaderSource(t *testing.T) {
	b := NewEbitenBackend(assets.FS())
	for _, p := range []string{"shaders/sprite.vs.kage", "shaders/sprite.fs.kage"} {
		src, err := b.ReadShaderSource(p)
		if err != nil || len(src) == 0 {
			t.Fatalf("ReadShaderSource(%q): %v", p, err)
		}
	}
}
