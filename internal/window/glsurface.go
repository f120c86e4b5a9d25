//go:build cgo

package window

import (
	"image/color"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"wirecube/internal/canvas"
)

// floats per vertex: x, y, r, g, b, a
const vertexFloats = 6

// glSurface batches rectangles and thick lines as triangles in pixel space
// and draws them in one call per frame.
type glSurface struct {
	width, height int

	program     uint32
	projUniform int32
	vao, vbo    uint32

	clearColor color.RGBA
	verts      []float32
}

var _ canvas.Surface = (*glSurface)(nil)

func newGLSurface(width, height int) (*glSurface, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	s := &glSurface{
		width:       width,
		height:      height,
		program:     program,
		projUniform: gl.GetUniformLocation(program, gl.Str("projection\x00")),
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	const stride = vertexFloats * 4
	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("colour\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	return s, nil
}

func (s *glSurface) Size() (int, int) {
	return s.width, s.height
}

// Clear drops everything batched so far. The GL clear itself happens in flush.
func (s *glSurface) Clear(c color.RGBA) {
	s.clearColor = c
	s.verts = s.verts[:0]
}

func (s *glSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	if !finite(x, y, w, h) {
		return
	}
	s.quad(
		mgl32.Vec2{float32(x), float32(y)},
		mgl32.Vec2{float32(x + w), float32(y)},
		mgl32.Vec2{float32(x + w), float32(y + h)},
		mgl32.Vec2{float32(x), float32(y + h)},
		c,
	)
}

// StrokeLine draws the segment as a quad of the given width.
func (s *glSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	if !finite(x1, y1, x2, y2, width) {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.FillRect(x1-width/2, y1-width/2, width, width, c)
		return
	}
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	s.quad(
		mgl32.Vec2{float32(x1 + nx), float32(y1 + ny)},
		mgl32.Vec2{float32(x2 + nx), float32(y2 + ny)},
		mgl32.Vec2{float32(x2 - nx), float32(y2 - ny)},
		mgl32.Vec2{float32(x1 - nx), float32(y1 - ny)},
		c,
	)
}

func (s *glSurface) quad(a, b, c, d mgl32.Vec2, col color.RGBA) {
	for _, p := range [6]mgl32.Vec2{a, b, c, a, c, d} {
		s.verts = append(s.verts,
			p.X(), p.Y(),
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255,
		)
	}
}

// flush clears the framebuffer and draws the batch.
// fbWidth and fbHeight are the framebuffer size in device pixels.
func (s *glSurface) flush(fbWidth, fbHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	c := s.clearColor
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if len(s.verts) == 0 {
		return
	}

	gl.UseProgram(s.program)
	projection := mgl32.Ortho2D(0, float32(s.width), float32(s.height), 0)
	gl.UniformMatrix4fv(s.projUniform, 1, false, &projection[0])

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.verts)*4, gl.Ptr(s.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(s.verts)/vertexFloats))
}

func (s *glSurface) delete() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
