package obj

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/breakout/resource"
)

// Renderer draws a textured, tinted sprite. render.Frame implements it.
type Renderer interface {
	DrawSprite(tex *resource.Texture, position, size mgl32.Vec2, rotate float32, color mgl32.Vec3)
}

// GameObject is anything with a pose on the playfield: bricks, the paddle
// and the ball.
type GameObject struct {
	position mgl32.Vec2
	size     mgl32.Vec2
	velocity mgl32.Vec2
	color    mgl32.Vec3
	// rotation in degrees about the object's center
	rotation  float32
	solid     bool
	destroyed bool
	texture   *resource.Texture
}

// NewGameObject creates an object holding a reference on texture. Both
// size components must be positive.
func NewGameObject(position, size, velocity mgl32.Vec2, color mgl32.Vec3, rotation float32, texture *resource.Texture, solid bool) *GameObject {
	if size.X() <= 0 || size.Y() <= 0 {
		panic(fmt.Sprintf("obj: game object size must be positive, got %v", size))
	}
	return &GameObject{
		position: position,
		size:     size,
		velocity: velocity,
		color:    color,
		rotation: rotation,
		solid:    solid,
		texture:  texture.Acquire(),
	}
}

// Draw issues the object to r. Destroyed-ness is the caller's concern.
func (o *GameObject) Draw(r Renderer) {
	if o == nil || r == nil {
		return
	}
	r.DrawSprite(o.texture, o.position, o.size, o.rotation, o.color)
}

// Release drops the object's texture reference.
func (o *GameObject) Release() {
	if o == nil {
		return
	}
	o.texture.Release()
	o.texture = nil
}

func (o *GameObject) IsDestroyed() bool { return o.destroyed }
func (o *GameObject) IsSolid() bool     { return o.solid }

// SetDestroyed marks the object destroyed. There is no way back.
func (o *GameObject) SetDestroyed() {
	o.destroyed = true
}

func (o *GameObject) Position() mgl32.Vec2 { return o.position }
func (o *GameObject) Size() mgl32.Vec2     { return o.size }
func (o *GameObject) Velocity() mgl32.Vec2 { return o.velocity }
func (o *GameObject) Color() mgl32.Vec3    { return o.color }
func (o *GameObject) Rotation() float32    { return o.rotation }

func (o *GameObject) Texture() *resource.Texture { return o.texture }

func (o *GameObject) SetPosition(p mgl32.Vec2) { o.position = p }
func (o *GameObject) SetVelocity(v mgl32.Vec2) { o.velocity = v }
func (o *GameObject) SetColor(c mgl32.Vec3)    { o.color = c }
func (o *GameObject) SetRotation(deg float32)  { o.rotation = deg }

// Bounds returns the object's axis-aligned rectangle. Rotation is ignored.
func (o *GameObject) Bounds() AABB {
	return AABB{Min: o.position, Size: o.size}
}

// CheckCollision reports whether the two objects' rectangles overlap or
// touch.
func (o *GameObject) CheckCollision(other *GameObject) bool {
	return Overlaps(o.Bounds(), other.Bounds())
}
