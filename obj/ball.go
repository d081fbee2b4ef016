package obj

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/breakout/resource"
)

// Ball is a GameObject with a radius that starts stuck to the paddle and
// bounces off the left, right and top walls once launched.
type Ball struct {
	*GameObject

	radius float32
	stuck  bool
}

// NewBall creates a stuck ball whose top-left corner is at position.
func NewBall(position mgl32.Vec2, radius float32, velocity mgl32.Vec2, texture *resource.Texture) *Ball {
	return &Ball{
		GameObject: NewGameObject(
			position,
			mgl32.Vec2{radius * 2, radius * 2},
			velocity,
			mgl32.Vec3{1, 1, 1},
			0,
			texture,
			false,
		),
		radius: radius,
		stuck:  true,
	}
}

func (b *Ball) Radius() float32 { return b.radius }
func (b *Ball) IsStuck() bool   { return b.stuck }

// Launch frees a stuck ball.
func (b *Ball) Launch() {
	b.stuck = false
}

// Move integrates a free ball over dt and reflects it off the side and
// top walls of a playfield windowWidth wide. There is no bottom wall: a
// ball leaving through the bottom is a miss for the caller to handle.
// A stuck ball does not move. The new position is returned.
func (b *Ball) Move(dt float32, windowWidth float32) mgl32.Vec2 {
	position := b.Position()
	if b.stuck {
		return position
	}

	velocity := b.Velocity()
	sizeX := b.Size().X()

	position = position.Add(velocity.Mul(dt))

	if position.X() <= 0 {
		velocity[0] = -velocity.X()
		position[0] = 0
	} else if position.X()+sizeX >= windowWidth {
		velocity[0] = -velocity.X()
		position[0] = windowWidth - sizeX
	}

	if position.Y() <= 0 {
		velocity[1] = -velocity.Y()
		position[1] = 0
	}

	b.SetVelocity(velocity)
	b.SetPosition(position)
	return position
}

// Reset places the ball for a new round. When restick is set the ball
// goes back to the stuck state; otherwise its state is left as is.
func (b *Ball) Reset(position, velocity mgl32.Vec2, restick bool) {
	b.SetVelocity(velocity)
	b.SetPosition(position)
	if restick {
		b.stuck = true
	}
}
