package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func box(x, y, w, h float32) *GameObject {
	return NewGameObject(mgl32.Vec2{x, y}, mgl32.Vec2{w, h}, mgl32.Vec2{}, mgl32.Vec3{1, 1, 1}, 0, nil, false)
}

func TestCheckCollision(t *testing.T) {
	cases := []struct {
		name string
		a, b *GameObject
		want bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"touching_x_edge", box(0, 0, 10, 10), box(10, 0, 10, 10), true},
		{"touching_y_edge", box(0, 0, 10, 10), box(0, 10, 10, 10), true},
		{"touching_corner", box(0, 0, 10, 10), box(10, 10, 10, 10), true},
		{"contained", box(0, 0, 100, 100), box(40, 40, 5, 5), true},
		{"gap_x", box(0, 0, 10, 10), box(10.5, 0, 10, 10), false},
		{"gap_y", box(0, 0, 10, 10), box(0, 11, 10, 10), false},
		{"overlap_x_only", box(0, 0, 10, 10), box(5, 30, 10, 10), false},
		{"negative_coords", box(-20, -20, 10, 10), box(-12, -15, 4, 4), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ab := c.a.CheckCollision(c.b)
			ba := c.b.CheckCollision(c.a)
			if ab != ba {
				t.Fatalf("collision is not symmetric: a/b=%v b/a=%v", ab, ba)
			}
			if ab != c.want {
				t.Fatalf("got %v, want %v", ab, c.want)
			}
		})
	}
}

func TestCheckCollisionIgnoresFlags(t *testing.T) {
	a, b := box(0, 0, 10, 10), box(5, 0, 10, 10)
	b.SetDestroyed()
	if !a.CheckCollision(b) {
		t.Fatalf("the predicate itself does not look at the destroyed flag")
	}
	a.SetRotation(45)
	if !a.CheckCollision(b) {
		t.Fatalf("rotation must not affect the AABB test")
	}
}

func TestSetDestroyedIsIdempotent(t *testing.T) {
	o := box(0, 0, 1, 1)
	if o.IsDestroyed() {
		t.Fatalf("new object should not be destroyed")
	}
	o.SetDestroyed()
	o.SetDestroyed()
	if !o.IsDestroyed() {
		t.Fatalf("object should stay destroyed")
	}
}

func TestNewGameObjectRejectsEmptySize(t *testing.T) {
	for _, size := range []mgl32.Vec2{{0, 1}, {1, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for size %v", size)
				}
			}()
			NewGameObject(mgl32.Vec2{}, size, mgl32.Vec2{}, mgl32.Vec3{}, 0, nil, false)
		}()
	}
}

func TestGameObjectTextureReference(t *testing.T) {
	cache, _ := newTestCache()
	tex, err := cache.LoadTexture("paddle.png", "paddle")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	o := NewGameObject(mgl32.Vec2{}, mgl32.Vec2{100, 20}, mgl32.Vec2{}, mgl32.Vec3{1, 1, 1}, 0, tex, false)
	if tex.Refs() != 2 || o.Texture() != tex {
		t.Fatalf("object should share the cached texture, refs=%d", tex.Refs())
	}
	o.Release()
	if tex.Refs() != 1 || o.Texture() != nil {
		t.Fatalf("release should drop only the object's reference, refs=%d", tex.Refs())
	}
}

func TestGameObjectDraw(t *testing.T) {
	o := NewGameObject(mgl32.Vec2{3, 4}, mgl32.Vec2{5, 6}, mgl32.Vec2{}, mgl32.Vec3{0.1, 0.2, 0.3}, 12, nil, false)
	r := &recordingRenderer{}
	o.Draw(r)
	if len(r.calls) != 1 {
		t.Fatalf("expected one draw call, got %d", len(r.calls))
	}
	c := r.calls[0]
	if c.position != (mgl32.Vec2{3, 4}) || c.size != (mgl32.Vec2{5, 6}) || c.rotate != 12 || c.color != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Fatalf("unexpected draw call %+v", c)
	}
}

func TestPenetration(t *testing.T) {
	cases := []struct {
		name   string
		a, b   AABB
		dx, dy float32
	}{
		{"apart", AABB{mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}}, AABB{mgl32.Vec2{20, 0}, mgl32.Vec2{10, 10}}, 0, 0},
		{"from_left", AABB{mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}}, AABB{mgl32.Vec2{8, 0}, mgl32.Vec2{10, 10}}, -2, 10},
		{"from_below", AABB{mgl32.Vec2{0, 17}, mgl32.Vec2{10, 10}}, AABB{mgl32.Vec2{0, 0}, mgl32.Vec2{10, 20}}, 10, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dx, dy := Penetration(c.a, c.b)
			if !mgl32.FloatEqualThreshold(dx, c.dx, 1e-4) || !mgl32.FloatEqualThreshold(dy, c.dy, 1e-4) {
				t.Fatalf("got (%v,%v), want (%v,%v)", dx, dy, c.dx, c.dy)
			}
		})
	}
}
