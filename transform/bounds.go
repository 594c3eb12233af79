package transform

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptySurface is returned by FitBounds for a surface with no area, such
// as a minimized window.
var ErrEmptySurface = errors.New("transform: surface has no area")

// Bounds is an orthographic view volume.
type Bounds struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

func (b Bounds) Projection() mgl32.Mat4 {
	return Orthographic(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far)
}

// FitBounds returns the view volume for a width x height surface in which the
// square [-1,1]x[-1,1] is fully visible and undistorted. The longer side of
// the surface is extended to keep the aspect ratio.
func FitBounds(width, height int32) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, errors.Wrapf(ErrEmptySurface, "%dx%d", width, height)
	}

	b := Bounds{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: -1, Far: 1}
	if width > height {
		f := float32(width) / float32(height)
		b.Left, b.Right = -f, f
	} else {
		f := float32(height) / float32(width)
		b.Bottom, b.Top = -f, f
	}

	return b, nil
}
