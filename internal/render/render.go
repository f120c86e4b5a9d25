// Package render runs mesh vertices through the transform pipeline and draws the result.
package render

import (
	"fmt"
	"strings"

	"wirecube/internal/anim"
	"wirecube/internal/canvas"
	"wirecube/internal/geom"
	"wirecube/internal/mesh"
)

// DepthPolicy decides what happens to vertices too close to the eye to project.
type DepthPolicy int

const (
	// DepthSkip drops every edge touching such a vertex.
	DepthSkip DepthPolicy = iota
	// DepthClamp pushes such vertices back to MinDepth.
	DepthClamp
)

func (p DepthPolicy) String() string {
	switch p {
	case DepthSkip:
		return "skip"
	case DepthClamp:
		return "clamp"
	}
	return fmt.Sprintf("DepthPolicy(%d)", int(p))
}

// Set implements flag.Value.
func (p *DepthPolicy) Set(s string) error {
	switch strings.ToLower(s) {
	case "skip":
		*p = DepthSkip
	case "clamp":
		*p = DepthClamp
	default:
		return fmt.Errorf("unknown depth policy %q", s)
	}
	return nil
}

// Pipeline maps model space vertices to screen points:
// rotate, translate depth, project, map to screen. The order matters.
type Pipeline struct {
	Width, Height float64
	MinDepth      float64
	Policy        DepthPolicy
	Aspect        bool // keep proportions on non-square surfaces
}

func DefaultPipeline(width, height float64) Pipeline {
	return Pipeline{
		Width:    width,
		Height:   height,
		MinDepth: 1e-3,
		Policy:   DepthSkip,
	}
}

// Vertex transforms p for state s.
// It reports false when the vertex is behind MinDepth and the policy is DepthSkip.
func (pl Pipeline) Vertex(p geom.Point3, s anim.State) (geom.ScreenPoint, bool) {
	v := geom.TranslateZ(geom.RotateY(p, s.Angle), s.Depth)
	if v.Z < pl.MinDepth {
		if pl.Policy == DepthSkip {
			return geom.ScreenPoint{}, false
		}
		v.Z = pl.MinDepth
	}
	n := geom.Project(v)
	if pl.Aspect {
		return geom.ToScreenAspect(n, pl.Width, pl.Height), true
	}
	return geom.ToScreen(n, pl.Width, pl.Height), true
}

// Stats summarizes one drawn frame.
type Stats struct {
	Lines   int
	Points  int
	Skipped int
}

// Renderer draws a mesh as a wireframe. It implements anim.Scene.
type Renderer struct {
	Mesh         *mesh.Mesh
	Drawer       *canvas.Drawer
	Pipeline     Pipeline
	ShowVertices bool

	last  Stats
	edges []mesh.Edge
}

var _ anim.Scene = (*Renderer)(nil)

func New(m *mesh.Mesh, d *canvas.Drawer, pl Pipeline) *Renderer {
	return &Renderer{
		Mesh:     m,
		Drawer:   d,
		Pipeline: pl,
		edges:    m.Edges(),
	}
}

func (r *Renderer) Clear() {
	r.Drawer.Clear()
}

func (r *Renderer) Draw(s anim.State) {
	r.last = r.DrawFrame(s)
}

// DrawFrame draws every edge of the mesh for state s, then the vertices if enabled.
func (r *Renderer) DrawFrame(s anim.State) Stats {
	var st Stats
	screen := make([]geom.ScreenPoint, len(r.Mesh.Vertices))
	visible := make([]bool, len(r.Mesh.Vertices))
	for i, v := range r.Mesh.Vertices {
		screen[i], visible[i] = r.Pipeline.Vertex(v, s)
	}
	if r.edges == nil {
		r.edges = r.Mesh.Edges()
	}
	for _, e := range r.edges {
		if !visible[e[0]] || !visible[e[1]] {
			st.Skipped++
			continue
		}
		r.Drawer.DrawLine(screen[e[0]], screen[e[1]])
		st.Lines++
	}
	if r.ShowVertices {
		for i, p := range screen {
			if !visible[i] {
				continue
			}
			r.Drawer.DrawPoint(p)
			st.Points++
		}
	}
	return st
}

// LastStats returns the stats of the latest Draw call.
func (r *Renderer) LastStats() Stats {
	return r.last
}
