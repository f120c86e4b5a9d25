package geom_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"wirecube/internal/geom"
)

const tolerance = 1e-9

var samplePoints = []geom.Point3{
	{0, 0, 0},
	{0.25, 0.25, 0.25},
	{-0.25, 0.25, -0.25},
	{1, -2, 3},
	{-7.5, 0.1, 42},
}

func assertPoint3InDelta(t *testing.T, want, got geom.Point3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, "x")
	assert.InDelta(t, want.Y, got.Y, tolerance, "y")
	assert.InDelta(t, want.Z, got.Z, tolerance, "z")
}

func TestRotateY(t *testing.T) {
	t.Run("zero angle is identity", func(t *testing.T) {
		for _, p := range samplePoints {
			assert.Equal(t, p, geom.RotateY(p, 0))
		}
	})
	t.Run("rotations compose additively", func(t *testing.T) {
		angles := []float64{0.1, 1, math.Pi / 2, 3, 5.5}
		for _, p := range samplePoints {
			for _, a := range angles {
				for _, b := range angles {
					got := geom.RotateY(geom.RotateY(p, a), b)
					want := geom.RotateY(p, math.Mod(a+b, 2*math.Pi))
					assertPoint3InDelta(t, want, got)
				}
			}
		}
	})
	t.Run("preserves distance from the y axis", func(t *testing.T) {
		for _, p := range samplePoints {
			r := geom.RotateY(p, 1.234)
			assert.InDelta(t, math.Hypot(p.X, p.Z), math.Hypot(r.X, r.Z), tolerance)
			assert.Equal(t, p.Y, r.Y)
		}
	})
	t.Run("quarter turn moves x into z", func(t *testing.T) {
		got := geom.RotateY(geom.Point3{X: 1}, math.Pi/2)
		assertPoint3InDelta(t, geom.Point3{Z: 1}, got)
	})
}

func TestTranslateZ(t *testing.T) {
	t.Run("zero offset is identity", func(t *testing.T) {
		for _, p := range samplePoints {
			assert.Equal(t, p, geom.TranslateZ(p, 0))
		}
	})
	t.Run("offsets add up", func(t *testing.T) {
		for _, p := range samplePoints {
			got := geom.TranslateZ(geom.TranslateZ(p, 0.5), 1.25)
			assertPoint3InDelta(t, geom.TranslateZ(p, 1.75), got)
		}
	})
	t.Run("only z changes", func(t *testing.T) {
		got := geom.TranslateZ(geom.Point3{X: 1, Y: 2, Z: 3}, 4)
		assert.Equal(t, geom.Point3{X: 1, Y: 2, Z: 7}, got)
	})
}

func TestProject(t *testing.T) {
	cases := []geom.Point3{{1, 2, 4}, {0.25, 0.25, 1.25}, {-3, 9, -3}}
	for _, p := range cases {
		got := geom.Project(p)
		assert.Equal(t, geom.NDCPoint{X: p.X / p.Z, Y: p.Y / p.Z}, got)
	}
	t.Run("farther points shrink toward the origin", func(t *testing.T) {
		near := geom.Project(geom.Point3{X: 1, Y: 1, Z: 2})
		far := geom.Project(geom.Point3{X: 1, Y: 1, Z: 4})
		assert.Less(t, far.X, near.X)
		assert.Less(t, far.Y, near.Y)
	})
}

func TestToScreen(t *testing.T) {
	const w, h = 800.0, 600.0
	cases := []struct {
		in   geom.NDCPoint
		want geom.ScreenPoint
	}{
		{geom.NDCPoint{X: -1, Y: -1}, geom.ScreenPoint{X: 0, Y: h}},
		{geom.NDCPoint{X: 1, Y: 1}, geom.ScreenPoint{X: w, Y: 0}},
		{geom.NDCPoint{X: 0, Y: 0}, geom.ScreenPoint{X: w / 2, Y: h / 2}},
		{geom.NDCPoint{X: -1, Y: 1}, geom.ScreenPoint{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, geom.ToScreen(tc.in, w, h))
	}
}

func TestToScreenAspect(t *testing.T) {
	t.Run("square surface matches ToScreen", func(t *testing.T) {
		p := geom.NDCPoint{X: 0.3, Y: -0.7}
		assert.Equal(t, geom.ToScreen(p, 800, 800), geom.ToScreenAspect(p, 800, 800))
	})
	t.Run("wide surface keeps squares square", func(t *testing.T) {
		a := geom.ToScreenAspect(geom.NDCPoint{X: -0.5, Y: -0.5}, 960, 540)
		b := geom.ToScreenAspect(geom.NDCPoint{X: 0.5, Y: 0.5}, 960, 540)
		assert.True(t, mgl64.FloatEqualThreshold(b.X-a.X, a.Y-b.Y, tolerance))
	})
	t.Run("tall surface keeps squares square", func(t *testing.T) {
		a := geom.ToScreenAspect(geom.NDCPoint{X: -0.5, Y: -0.5}, 300, 900)
		b := geom.ToScreenAspect(geom.NDCPoint{X: 0.5, Y: 0.5}, 300, 900)
		assert.True(t, mgl64.FloatEqualThreshold(b.X-a.X, a.Y-b.Y, tolerance))
	})
}

func TestScreenPointIsFinite(t *testing.T) {
	assert.True(t, geom.ScreenPoint{X: 1, Y: 2}.IsFinite())
	assert.False(t, geom.ScreenPoint{X: math.Inf(1), Y: 2}.IsFinite())
	assert.False(t, geom.ScreenPoint{X: 0, Y: math.NaN()}.IsFinite())
}

func TestPipelineEndToEnd(t *testing.T) {
	p := geom.Point3{X: 0.25, Y: 0.25, Z: 0.25}
	r := geom.RotateY(p, 0)
	assert.Equal(t, p, r)
	d := geom.TranslateZ(r, 1)
	assert.Equal(t, geom.Point3{X: 0.25, Y: 0.25, Z: 1.25}, d)
	n := geom.Project(d)
	assert.InDelta(t, 0.2, n.X, tolerance)
	assert.InDelta(t, 0.2, n.Y, tolerance)
	s := geom.ToScreen(n, 800, 800)
	assert.InDelta(t, 480, s.X, tolerance)
	assert.InDelta(t, 320, s.Y, tolerance)
}
