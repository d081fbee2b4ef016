package obj

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/breakout/resource"
	"go.uber.org/zap"
)

// stubBackend satisfies resource.Backend without touching the GPU.
type stubBackend struct {
	loads   map[string]int
	missing map[string]bool
}

func (s *stubBackend) LoadImage(path string) (int, int, []byte, error) {
	s.loads[path]++
	if s.missing[path] {
		return 0, 0, nil, errors.New("missing")
	}
	return 1, 1, make([]byte, 4), nil
}

func (s *stubBackend) UploadTexture(int, int, []byte) (*ebiten.Image, error) { return nil, nil }

func (s *stubBackend) ReadShaderSource(string) ([]byte, error) { return nil, nil }

func (s *stubBackend) CompileShader(_, _ []byte) (*ebiten.Shader, error) { return nil, nil }

func newTestCache() (*resource.Cache, *stubBackend) {
	b := &stubBackend{loads: make(map[string]int), missing: make(map[string]bool)}
	return resource.NewCache(b, zap.NewNop()), b
}

type drawCall struct {
	tex      *resource.Texture
	position mgl32.Vec2
	size     mgl32.Vec2
	rotate   float32
	color    mgl32.Vec3
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawSprite(tex *resource.Texture, position, size mgl32.Vec2, rotate float32, color mgl32.Vec3) {
	r.calls = append(r.calls, drawCall{tex, position, size, rotate, color})
}

func vecNear(a, b mgl32.Vec2) bool {
	return a.ApproxEqualThreshold(b, 1e-4)
}
