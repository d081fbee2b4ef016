package resource

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrNotLoaded is the panic value wrapped when a resource is requested by
// name before it was loaded.
var ErrNotLoaded = errors.New("resource: not loaded")

// Backend performs the actual decode, upload and compile work.
type Backend interface {
	LoadImage(path string) (width, height int, pix []byte, err error)
	UploadTexture(width, height int, pix []byte) (*ebiten.Image, error)
	ReadShaderSource(path string) ([]byte, error)
	CompileShader(vertex, fragment []byte) (*ebiten.Shader, error)
}

// Cache stores textures and shaders by name. Each name is loaded at most
// once; entries are never evicted. Not safe for concurrent use.
type Cache struct {
	backend  Backend
	log      *zap.Logger
	textures map[string]*Texture
	shaders  map[string]*Shader
}

// NewCache creates an empty cache over backend.
func NewCache(backend Backend, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		backend:  backend,
		log:      log,
		textures: make(map[string]*Texture),
		shaders:  make(map[string]*Shader),
	}
}

// LoadTexture returns the texture registered under name, loading it from
// path on first use. Once a name is present path is not consulted.
func (c *Cache) LoadTexture(path, name string) (*Texture, error) {
	if tex, ok := c.textures[name]; ok {
		return tex, nil
	}

	c.log.Debug("loading texture", zap.String("name", name), zap.String("path", path))
	w, h, pix, err := c.backend.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("resource: load image %s: %w", path, err)
	}
	img, err := c.backend.UploadTexture(w, h, pix)
	if err != nil {
		return nil, fmt.Errorf("resource: upload texture %s: %w", path, err)
	}

	tex := &Texture{Name: name, Path: path, Width: w, Height: h, image: img}
	c.textures[name] = tex.Acquire()
	c.log.Info("texture loaded", zap.String("name", name), zap.Int("width", w), zap.Int("height", h))
	return tex, nil
}

// LoadShader returns the shader registered under name, compiling it from
// the two source files on first use.
func (c *Cache) LoadShader(vertexPath, fragmentPath, name string) (*Shader, error) {
	if sh, ok := c.shaders[name]; ok {
		return sh, nil
	}

	c.log.Debug("loading shader", zap.String("name", name),
		zap.String("vertex", vertexPath), zap.String("fragment", fragmentPath))
	vs, err := c.backend.ReadShaderSource(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("resource: read shader %s: %w", vertexPath, err)
	}
	fs, err := c.backend.ReadShaderSource(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("resource: read shader %s: %w", fragmentPath, err)
	}
	prog, err := c.backend.CompileShader(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("resource: compile shader %s (%s, %s): %w", name, vertexPath, fragmentPath, err)
	}

	sh := &Shader{Name: name, VertexPath: vertexPath, FragmentPath: fragmentPath, shader: prog}
	c.shaders[name] = sh.Acquire()
	c.log.Info("shader compiled", zap.String("name", name))
	return sh, nil
}

// Texture returns a loaded texture. Asking for a name that was never
// loaded is a programming error and panics.
func (c *Cache) Texture(name string) *Texture {
	tex, ok := c.textures[name]
	if !ok {
		panic(fmt.Errorf("%w: texture %q", ErrNotLoaded, name))
	}
	return tex
}

// Shader returns a loaded shader, panicking if name is unknown.
func (c *Cache) Shader(name string) *Shader {
	sh, ok := c.shaders[name]
	if !ok {
		panic(fmt.Errorf("%w: shader %q", ErrNotLoaded, name))
	}
	return sh
}

func (c *Cache) LookupTexture(name string) (*Texture, bool) {
	tex, ok := c.textures[name]
	return tex, ok
}

func (c *Cache) LookupShader(name string) (*Shader, bool) {
	sh, ok := c.shaders[name]
	return sh, ok
}

// Len reports how many textures and shaders are cached.
func (c *Cache) Len() (textures, shaders int) {
	return len(c.textures), len(c.shaders)
}
