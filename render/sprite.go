package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/breakout/resource"
)

// SpriteRenderer draws textured, tinted quads. With a shader the Kage
// program does the tinting; without one ebiten's vertex colors are used.
type SpriteRenderer struct {
	shader   *resource.Shader
	vertices []ebiten.Vertex
}

func NewSpriteRenderer(shader *resource.Shader) *SpriteRenderer {
	return &SpriteRenderer{
		shader:   shader.Acquire(),
		vertices: make([]ebiten.Vertex, len(UnitQuad)),
	}
}

// Close drops the renderer's reference on its shader.
func (r *SpriteRenderer) Close() {
	if r == nil {
		return
	}
	r.shader.Release()
	r.shader = nil
}

// Frame binds the renderer to a destination image for one draw pass.
func (r *SpriteRenderer) Frame(dst *ebiten.Image) Frame {
	return Frame{r: r, dst: dst}
}

// Frame is a SpriteRenderer bound to a destination.
type Frame struct {
	r   *SpriteRenderer
	dst *ebiten.Image
}

// DrawSprite draws tex over the rectangle at position/size, rotated by
// rotate degrees about its center and multiplied by color.
func (f Frame) DrawSprite(tex *resource.Texture, position, size mgl32.Vec2, rotate float32, color mgl32.Vec3) {
	if f.r == nil || f.dst == nil {
		return
	}
	img := tex.Image()
	if img == nil {
		return
	}

	model := ModelMatrix(position, size, rotate)
	fillSpriteVertices(f.r.vertices, model, float32(tex.Width), float32(tex.Height), color)

	if prog := f.r.shader.Program(); prog != nil {
		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Images[0] = img
		f.dst.DrawTrianglesShader(f.r.vertices, quadIndices, prog, op)
		return
	}
	f.dst.DrawTriangles(f.r.vertices, quadIndices, img, &ebiten.DrawTrianglesOptions{})
}

// fillSpriteVertices transforms the unit quad by model into dst. Source
// coordinates are in texture pixels.
func fillSpriteVertices(dst []ebiten.Vertex, model mgl32.Mat4, texW, texH float32, color mgl32.Vec3) {
	for i, qv := range UnitQuad {
		p := TransformPoint(model, qv.Pos)
		dst[i] = ebiten.Vertex{
			DstX:   p.X(),
			DstY:   p.Y(),
			SrcX:   qv.Tex.X() * texW,
			SrcY:   qv.Tex.Y() * texH,
			ColorR: color.X(),
			ColorG: color.Y(),
			ColorB: color.Z(),
			ColorA: 1,
		}
	}
}
