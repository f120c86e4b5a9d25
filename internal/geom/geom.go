// Package geom holds the point types and the pure transforms of the render pipeline.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a point in model or view space.
type Point3 struct {
	X, Y, Z float64
}

// NDCPoint is a point in normalized device coordinates, conventionally [-1,1] on both axes.
type NDCPoint struct {
	X, Y float64
}

// ScreenPoint is a point in pixel coordinates with the origin at the top left.
type ScreenPoint struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p ScreenPoint) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RotateY rotates p around the vertical axis by angle radians.
// Only the (x, z) plane is affected.
func RotateY(p Point3, angle float64) Point3 {
	xz := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{p.X, p.Z})
	return Point3{X: xz.X(), Y: p.Y, Z: xz.Y()}
}

// TranslateZ moves p along the depth axis.
func TranslateZ(p Point3, dz float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: p.Z + dz}
}

// Project applies the perspective divide. The caller must ensure p.Z != 0.
func Project(p Point3) NDCPoint {
	return NDCPoint{X: p.X / p.Z, Y: p.Y / p.Z}
}

// ToScreen maps p from NDC to pixel space of a width x height surface.
// The y axis is flipped: NDC +y is up, screen +y is down.
func ToScreen(p NDCPoint, width, height float64) ScreenPoint {
	return ScreenPoint{
		X: (p.X + 1) / 2 * width,
		Y: (1 - p.Y) / 2 * height,
	}
}

// ToScreenAspect is like ToScreen but compresses the longer axis
// so that shapes keep their proportions on non-square surfaces.
func ToScreenAspect(p NDCPoint, width, height float64) ScreenPoint {
	sx, sy := 1.0, 1.0
	if width > height {
		sx = height / width
	} else if height > width {
		sy = width / height
	}
	return ToScreen(NDCPoint{X: p.X * sx, Y: p.Y * sy}, width, height)
}
