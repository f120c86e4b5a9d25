package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Raster is a software Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA

	brushWidth float64
	brush      []image.Point
}

var _ Surface = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It is reused across frames.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.RGBA) {
	if !finite(x, y, w, h) {
		return
	}
	rect := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeLine draws the segment with a round brush of the given width.
// Segments are clipped to the image first, so far off-screen ends are cheap.
func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	if !finite(x1, y1, x2, y2, width) {
		return
	}
	w, h := r.Size()
	margin := width/2 + 1
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, -margin, -margin, float64(w)+margin, float64(h)+margin)
	if !ok {
		return
	}
	brush := r.brushFor(width)

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := x1
	y := y1
	for i := 0; i <= int(steps); i++ {
		ix := int(math.Floor(x + 0.5))
		iy := int(math.Floor(y + 0.5))
		for _, o := range brush {
			r.setPixel(ix+o.X, iy+o.Y, c)
		}
		x += xInc
		y += yInc
	}
}

func (r *Raster) setPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= r.img.Rect.Dx() || y < 0 || y >= r.img.Rect.Dy() {
		return
	}
	offset := r.img.PixOffset(x, y)
	r.img.Pix[offset] = c.R
	r.img.Pix[offset+1] = c.G
	r.img.Pix[offset+2] = c.B
	r.img.Pix[offset+3] = c.A
}

// brushFor returns the pixel offsets of a disc with the given diameter.
func (r *Raster) brushFor(width float64) []image.Point {
	if r.brush != nil && r.brushWidth == width {
		return r.brush
	}
	radius := math.Max(width/2, 0.5)
	n := int(math.Ceil(radius))
	var brush []image.Point
	for j := -n; j <= n; j++ {
		for i := -n; i <= n; i++ {
			if math.Hypot(float64(i), float64(j)) <= radius {
				brush = append(brush, image.Pt(i, j))
			}
		}
	}
	r.brushWidth = width
	r.brush = brush
	return brush
}

const (
	outLeft = 1 << iota
	outRight
	outAbove
	outBelow
)

func outcode(x, y, xmin, ymin, xmax, ymax float64) int {
	code := 0
	if x < xmin {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < ymin {
		code |= outAbove
	} else if y > ymax {
		code |= outBelow
	}
	return code
}

// clipLine clips a segment to the rectangle with Cohen-Sutherland.
// It reports false when nothing of the segment is inside.
func clipLine(x1, y1, x2, y2, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	c1 := outcode(x1, y1, xmin, ymin, xmax, ymax)
	c2 := outcode(x2, y2, xmin, ymin, xmax, ymax)
	for {
		if c1|c2 == 0 {
			return x1, y1, x2, y2, true
		}
		if c1&c2 != 0 {
			return 0, 0, 0, 0, false
		}
		c := c1
		if c == 0 {
			c = c2
		}
		var x, y float64
		switch {
		case c&outBelow != 0:
			x = x1 + (x2-x1)*(ymax-y1)/(y2-y1)
			y = ymax
		case c&outAbove != 0:
			x = x1 + (x2-x1)*(ymin-y1)/(y2-y1)
			y = ymin
		case c&outRight != 0:
			y = y1 + (y2-y1)*(xmax-x1)/(x2-x1)
			x = xmax
		case c&outLeft != 0:
			y = y1 + (y2-y1)*(xmin-x1)/(x2-x1)
			x = xmin
		}
		if c == c1 {
			x1, y1 = x, y
			c1 = outcode(x1, y1, xmin, ymin, xmax, ymax)
		} else {
			x2, y2 = x, y
			c2 = outcode(x2, y2, xmin, ymin, xmax, ymax)
		}
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
