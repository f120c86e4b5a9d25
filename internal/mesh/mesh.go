// Package mesh describes wireframe models as vertices and faces.
package mesh

import (
	"errors"
	"fmt"

	"wirecube/internal/geom"
)

var ErrInvalidFace = errors.New("invalid face")

// Face is an ordered list of vertex indices.
// Two indices form a single edge, three or more a closed polygon.
type Face []int

// Edge is a pair of vertex indices.
type Edge [2]int

// Mesh is an immutable wireframe model.
type Mesh struct {
	Vertices []geom.Point3
	Faces    []Face
}

// New returns a mesh after checking that every face is valid.
func New(vertices []geom.Point3, faces []Face) (*Mesh, error) {
	m := &Mesh{Vertices: vertices, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Cube returns a cube of side 0.5 centered on the origin.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []geom.Point3{
			// Front face
			{X: 0.25, Y: 0.25, Z: 0.25},
			{X: 0.25, Y: -0.25, Z: 0.25},
			{X: -0.25, Y: -0.25, Z: 0.25},
			{X: -0.25, Y: 0.25, Z: 0.25},
			// Back face
			{X: 0.25, Y: 0.25, Z: -0.25},
			{X: 0.25, Y: -0.25, Z: -0.25},
			{X: -0.25, Y: -0.25, Z: -0.25},
			{X: -0.25, Y: 0.25, Z: -0.25},
		},
		Faces: []Face{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			// Connecting lines
			{0, 4},
			{1, 5},
			{2, 6},
			{3, 7},
		},
	}
}

// Validate reports the first face that is too short or references a missing vertex.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		if len(f) < 2 {
			return fmt.Errorf("face %d has %d indices: %w", i, len(f), ErrInvalidFace)
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d: index %d out of range [0,%d): %w", i, idx, len(m.Vertices), ErrInvalidFace)
			}
		}
	}
	return nil
}

// Edges returns the edges of f in drawing order.
// Polygons wrap from the last index back to the first.
func (f Face) Edges() []Edge {
	switch n := len(f); {
	case n < 2:
		return nil
	case n == 2:
		return []Edge{{f[0], f[1]}}
	default:
		edges := make([]Edge, 0, n)
		for i := range n {
			edges = append(edges, Edge{f[i], f[(i+1)%n]})
		}
		return edges
	}
}

// Edges returns the edges of all faces in drawing order.
func (m *Mesh) Edges() []Edge {
	var edges []Edge
	for _, f := range m.Faces {
		edges = append(edges, f.Edges()...)
	}
	return edges
}
