// Package canvastest provides a Surface that records draw calls instead of rendering them.
package canvastest

import (
	"image/color"

	"wirecube/internal/canvas"
)

type Op int

const (
	OpClear Op = iota
	OpFillRect
	OpStrokeLine
)

// Call is one recorded draw call. Unused fields are zero.
type Call struct {
	Op     Op
	Color  color.RGBA
	Coords [4]float64
	Width  float64
}

// Recorder is a fixed-size Surface that records every call in order.
type Recorder struct {
	W, H  int
	Calls []Call
}

var _ canvas.Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}

func (r *Recorder) Clear(c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Color: c, Coords: [4]float64{x, y, w, h}})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, Color: c, Coords: [4]float64{x1, y1, x2, y2}, Width: width})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	var n int
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
