// Package render writes horn meshes and profiles to files: STL for the
// surface, CSV, DXF and plots for profiles and a shaded PNG preview.
package render

import (
	waveguide "github.com/j-poil/waveguide-generator"
)

// Triangle3 is the triangle type read from a Renderer.
type Triangle3 = waveguide.Triangle

// Renderer streams triangles. ReadTriangles returns io.EOF after the last
// triangle has been read. *waveguide.Stitcher implements Renderer.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// NewMeshRenderer returns a Renderer over an already generated mesh.
func NewMeshRenderer(mesh waveguide.Mesh) Renderer {
	return &triangle3Buffer{buf: mesh}
}
