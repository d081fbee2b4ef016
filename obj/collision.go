package obj

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned rectangle given by its top-left corner and size.
type AABB struct {
	Min  mgl32.Vec2
	Size mgl32.Vec2
}

func (b AABB) Max() mgl32.Vec2 { return b.Min.Add(b.Size) }

func (b AABB) Center() mgl32.Vec2 { return b.Min.Add(b.Size.Mul(0.5)) }

// Overlaps is the inclusive rectangle test: shared edges count as a hit.
func Overlaps(a, b AABB) bool {
	colX := a.Min.X()+a.Size.X() >= b.Min.X() &&
		b.Min.X()+b.Size.X() >= a.Min.X()
	colY := a.Min.Y()+a.Size.Y() >= b.Min.Y() &&
		b.Min.Y()+b.Size.Y() >= a.Min.Y()
	return colX && colY
}

// Penetration returns how far a must move along each axis to stop
// overlapping b. Signs point away from b. Both are zero when the
// rectangles do not overlap.
func Penetration(a, b AABB) (dx, dy float32) {
	if !Overlaps(a, b) {
		return 0, 0
	}
	ac, bc := a.Center(), b.Center()

	ox := (a.Size.X()+b.Size.X())/2 - mgl32.Abs(ac.X()-bc.X())
	oy := (a.Size.Y()+b.Size.Y())/2 - mgl32.Abs(ac.Y()-bc.Y())
	if ac.X() < bc.X() {
		ox = -ox
	}
	if ac.Y() < bc.Y() {
		oy = -oy
	}
	return ox, oy
}
