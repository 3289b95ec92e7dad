package render

import (
	"errors"
	"fmt"

	"github.com/hschendel/stl"
)

// NewSolid converts a triangle slice to a named STL solid. Normals are
// computed from the float64 vertices.
func NewSolid(name string, model []Triangle3) (*stl.Solid, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	solid := &stl.Solid{
		Name:      name,
		Triangles: make([]stl.Triangle, len(model)),
	}
	for i, t := range model {
		d := newSTLTriangle(t)
		if d.nonFinite() {
			return nil, fmt.Errorf("triangle %d: %w", i, errNonFiniteVertex)
		}
		solid.Triangles[i] = stl.Triangle{
			Normal:   stl.Vec3(d.Normal),
			Vertices: [3]stl.Vec3{d.Vertex1, d.Vertex2, d.Vertex3},
		}
	}
	return solid, nil
}

// CreateASCIISTL renders r to an ASCII STL file at path. Unlike CreateSTL the
// whole mesh is held in memory.
func CreateASCIISTL(path, name string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	solid, err := NewSolid(name, model)
	if err != nil {
		return err
	}
	solid.IsAscii = true
	return solid.WriteFile(path)
}
