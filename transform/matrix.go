// Package transform builds the model and projection matrices uploaded to the
// triangle program every frame. Matrices are column-major mgl32.Mat4 values,
// the layout glUniformMatrix4fv expects without transposition.
package transform

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationZ rotates counter-clockwise by angle radians about the Z axis, as
// seen from positive Z looking toward the origin.
func RotationZ(angle float32) mgl32.Mat4 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)

	return mgl32.Mat4{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Orthographic maps the box [left,right]x[bottom,top]x[-near,-far] onto the
// normalized device cube. Each pair of bounds must differ.
func Orthographic(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	width, height, depth := right-left, top-bottom, far-near

	return mgl32.Mat4{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, -2 / depth, 0,
		-(right + left) / width, -(top + bottom) / height, -(far + near) / depth, 1,
	}
}

// quarterTurn is how long SpinAngle takes to advance by π/2.
const quarterTurn = 20 * time.Second

// SpinAngle is the model rotation after elapsed time.
func SpinAngle(elapsed time.Duration) float32 {
	turns := float32(elapsed.Seconds() / quarterTurn.Seconds())
	return turns * math32.Pi / 2
}
