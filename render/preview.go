package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a mesh preview. The mesh is scaled to fit a
// bi-unit cube centered at the origin before rendering.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
	// Output image size in pixels.
	Width, Height int
	// Supersampling factor used for antialiasing.
	Scale int
}

// DefaultView looks into the horn mouth from above and to the side.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Y: 1},
		Eye:    r3.Vec{X: 2.5, Y: 2, Z: 3},
		Near:   1,
		Far:    10,
		Width:  800,
		Height: 600,
		Scale:  2,
	}
}

// Preview renders a Phong shaded image of the triangles.
func Preview(model []Triangle3, view View) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	}
	triangles := make([]*fauxgl.Triangle, 0, len(model))
	for _, t := range model {
		if t.Degenerate(0) {
			continue
		}
		triangles = append(triangles, fauxgl.NewTriangleForPoints(vec(t[0]), vec(t[1]), vec(t[2])))
	}
	return draw(fauxgl.NewTriangleMesh(triangles), view), nil
}

// draw renders a Phong shaded image of mesh. The mesh is modified in place.
func draw(mesh *fauxgl.Mesh, view View) image.Image {
	const fovy = 30 // vertical field of view in degrees
	scale := view.Scale
	if scale < 1 {
		scale = 1
	}
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()

	var (
		eye    = vec(view.Eye)
		center = vec(view.LookAt)
		up     = vec(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// The horn is an open surface so its inner wall must be drawn too.
	context.Cull = fauxgl.CullNone
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	if scale > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img
}

// CreatePNG renders a preview of the triangles of r to a PNG file at path.
func CreatePNG(path string, r Renderer, view View) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	img, err := Preview(model, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

// CreatePNGFromSTL renders a preview of an existing STL file to a PNG file.
func CreatePNGFromSTL(stlPath, pngPath string, view View) error {
	if view.Width <= 0 || view.Height <= 0 {
		return errors.New("preview size must be positive")
	}
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(pngPath, draw(mesh, view))
}

func vec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
