package resource

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenBackend decodes assets from an fs.FS and hands them to ebiten.
type EbitenBackend struct {
	fsys fs.FS
}

func NewEbitenBackend(fsys fs.FS) *EbitenBackend {
	return &EbitenBackend{fsys: fsys}
}

// LoadImage decodes a png or jpeg into premultiplied RGBA bytes.
func (b *EbitenBackend) LoadImage(path string) (int, int, []byte, error) {
	data, err := fs.ReadFile(b.fsys, path)
	if err != nil {
		return 0, 0, nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return bounds.Dx(), bounds.Dy(), rgba.Pix, nil
}

func (b *EbitenBackend) UploadTexture(width, height int, pix []byte) (*ebiten.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(pix) != 4*width*height {
		return nil, fmt.Errorf("pixel buffer has %d bytes, want %d", len(pix), 4*width*height)
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pix)
	return img, nil
}

func (b *EbitenBackend) ReadShaderSource(path string) ([]byte, error) {
	return fs.ReadFile(b.fsys, path)
}

// CompileShader builds a Kage program. Kage has no user vertex stage, so
// the vertex source carries the program preamble and the fragment source
// is appended to it.
func (b *EbitenBackend) CompileShader(vertex, fragment []byte) (*ebiten.Shader, error) {
	src := make([]byte, 0, len(vertex)+len(fragment)+1)
	src = append(src, vertex...)
	src = append(src, '\n')
	src = append(src, fragment...)
	return ebiten.NewShader(src)
}
