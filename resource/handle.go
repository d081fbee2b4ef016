package resource

import "github.com/hajimehoshi/ebiten/v2"

// Texture is a shared handle to an uploaded image. The cache holds one
// reference for its lifetime; every object drawing with the texture holds
// another. The GPU image is freed when the last reference is released.
type Texture struct {
	Name   string
	Path   string
	Width  int
	Height int

	image *ebiten.Image
	refs  int
}

// Image returns the uploaded image, or nil once the texture was freed.
func (t *Texture) Image() *ebiten.Image {
	if t == nil {
		return nil
	}
	return t.image
}

// Acquire adds a reference and returns t for chaining.
func (t *Texture) Acquire() *Texture {
	if t == nil {
		return nil
	}
	t.refs++
	return t
}

// Release drops a reference.
func (t *Texture) Release() {
	if t == nil || t.refs == 0 {
		return
	}
	t.refs--
	if t.refs == 0 && t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
}

// Refs reports the number of live references.
func (t *Texture) Refs() int {
	if t == nil {
		return 0
	}
	return t.refs
}

// Shader is a shared handle to a compiled shader program.
type Shader struct {
	Name         string
	VertexPath   string
	FragmentPath string

	shader *ebiten.Shader
	refs   int
}

func (s *Shader) Program() *ebiten.Shader {
	if s == nil {
		return nil
	}
	return s.shader
}

func (s *Shader) Acquire() *Shader {
	if s == nil {
		return nil
	}
	s.refs++
	return s
}

func (s *Shader) Release() {
	if s == nil || s.refs == 0 {
		return
	}
	s.refs--
	if s.refs == 0 && s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}

func (s *Shader) Refs() int {
	if s == nil {
		return 0
	}
	return s.refs
}
