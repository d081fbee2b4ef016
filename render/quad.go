package render

import "github.com/go-gl/mathgl/mgl32"

// QuadVertex is one corner of the shared sprite mesh.
type QuadVertex struct {
	Pos mgl32.Vec2
	Tex mgl32.Vec2
}

// UnitQuad is the two-triangle mesh every sprite is drawn with.
var UnitQuad = [6]QuadVertex{
	{Pos: mgl32.Vec2{0, 1}, Tex: mgl32.Vec2{0, 1}},
	{Pos: mgl32.Vec2{1, 0}, Tex: mgl32.Vec2{1, 0}},
	{Pos: mgl32.Vec2{0, 0}, Tex: mgl32.Vec2{0, 0}},

	{Pos: mgl32.Vec2{0, 1}, Tex: mgl32.Vec2{0, 1}},
	{Pos: mgl32.Vec2{1, 1}, Tex: mgl32.Vec2{1, 1}},
	{Pos: mgl32.Vec2{1, 0}, Tex: mgl32.Vec2{1, 0}},
}

var quadIndices = []uint16{0, 1, 2, 3, 4, 5}
