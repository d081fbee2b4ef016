package render

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix maps the unit quad (0,0)-(1,1) onto a sprite with the given
// top-left position and size, rotated about its own center.
//
// The composition is T(position) · T(size/2) · Rz · T(-size/2) · S(size);
// moving the rotation next to T(position) would pivot on the top-left
// corner instead.
func ModelMatrix(position, size mgl32.Vec2, rotationDegrees float32) mgl32.Mat4 {
	model := mgl32.Translate3D(position.X(), position.Y(), 0)
	model = model.Mul4(mgl32.Translate3D(0.5*size.X(), 0.5*size.Y(), 0))
	model = model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDegrees)))
	model = model.Mul4(mgl32.Translate3D(-0.5*size.X(), -0.5*size.Y(), 0))
	return model.Mul4(mgl32.Scale3D(size.X(), size.Y(), 1))
}

// Projection is the pixel-space orthographic projection with y pointing
// down, matching ebiten's screen coordinates.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}

// TransformPoint applies m to a point on the z=0 plane.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec2) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	return mgl32.Vec2{v.X(), v.Y()}
}
