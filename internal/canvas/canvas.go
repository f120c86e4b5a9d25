// Package canvas defines the drawing surface contract and the primitive drawer on top of it.
package canvas

import (
	"image/color"

	"wirecube/internal/geom"
)

// Surface is a 2D drawing target in pixel space.
// Drawing outside its bounds is clipped, never an error.
type Surface interface {
	Size() (width, height int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA)
}

var (
	Background = color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}
	Foreground = color.RGBA{0x80, 0x00, 0xFF, 0xFF}
)

// Style holds the colors and sizes of drawn primitives.
type Style struct {
	Background color.RGBA
	Foreground color.RGBA
	PointSize  float64
	LineWidth  float64
}

func DefaultStyle() Style {
	return Style{
		Background: Background,
		Foreground: Foreground,
		PointSize:  10,
		LineWidth:  3,
	}
}

// Drawer draws points and lines onto a surface.
type Drawer struct {
	Surface Surface
	Style   Style
}

func NewDrawer(s Surface, style Style) *Drawer {
	return &Drawer{Surface: s, Style: style}
}

// Clear fills the whole surface with the background color.
func (d *Drawer) Clear() {
	d.Surface.Clear(d.Style.Background)
}

// DrawPoint fills a square of side PointSize centered on p.
func (d *Drawer) DrawPoint(p geom.ScreenPoint) {
	size := d.Style.PointSize
	d.Surface.FillRect(p.X-size/2, p.Y-size/2, size, size, d.Style.Foreground)
}

// DrawLine strokes a segment from a to b.
func (d *Drawer) DrawLine(a, b geom.ScreenPoint) {
	d.Surface.StrokeLine(a.X, a.Y, b.X, b.Y, d.Style.LineWidth, d.Style.Foreground)
}
