package player

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
)

// MoveForward adds walking input along the horizontal view direction. throttle is the analogue
// axis value, usually in [-1, 1].
func (c *Character) MoveForward(throttle float32) {
	c.addMovementInput(c.pose.Camera().Forward(), throttle)
}

// MoveRight adds walking input along the horizontal right of the view.
func (c *Character) MoveRight(throttle float32) {
	c.addMovementInput(c.pose.Camera().Right(), throttle)
}

func (c *Character) addMovementInput(axis mgl32.Vec3, throttle float32) {
	if throttle == 0 {
		return
	}
	c.input = c.input.Add(game.SafeNormal(game.Horizontal(axis)).Mul(throttle))
}

// walk consumes the movement input gathered since the last frame. Input is capped at unit
// length, so full deflection on both axes is no faster than on one.
func (c *Character) walk(dt time.Duration) {
	input := game.ClampLen(c.input, 1)
	c.input = mgl32.Vec3{}

	c.velocity = input.Mul(c.conf.Character.WalkSpeed)
	if c.velocity == (mgl32.Vec3{}) {
		return
	}
	c.pose.MoveBody(c.velocity.Mul(float32(dt.Seconds())))
	c.Dbg.Notify(DebugModeMovement, true, "walking at %v", game.RoundVec32(c.velocity, 2))
}
