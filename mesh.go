package waveguide

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"

	"github.com/j-poil/waveguide-generator/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a mesh facet. Vertices are ordered counter-clockwise when
// viewed from outside the horn.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle computed from its edges.
// Degenerate triangles return the zero vector.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	norm := r3.Norm(n)
	if norm == 0 || math.IsNaN(norm) {
		return r3.Vec{}
	}
	return r3.Scale(1/norm, n)
}

// Degenerate returns true if two vertices are within tol of each other.
func (t Triangle) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Mesh is an unindexed triangle soup.
type Mesh []Triangle

// Bounds returns the bounding box of the mesh.
func (m Mesh) Bounds() r3.Box {
	if len(m) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: m[0][0], Max: m[0][0]}
	for _, t := range m {
		for _, v := range t {
			bb = bb.Include(v)
		}
	}
	return r3.Box(bb)
}

// Stitcher revolves a set of profiles into triangles. Profile i is joined to
// profile (i+1) mod len(profiles) so the surface closes on itself.
// Triangles are produced lazily through ReadTriangles.
type Stitcher struct {
	profiles []Profile
	points   int
	next     int // index of next triangle to emit
}

// NewStitcher checks the profiles share a point count and returns a Stitcher
// over them. Profiles must be ordered by increasing azimuth.
func NewStitcher(profiles []Profile) (*Stitcher, error) {
	const op = "stitch"
	if len(profiles) < 2 {
		return nil, configErrf(op, ErrParameter, "need at least 2 profiles, got %d", len(profiles))
	}
	points := len(profiles[0])
	for i, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		if len(p) != points {
			return nil, configErrf(op, ErrProfileMismatch, "profile %d has %d points, profile 0 has %d", i, len(p), points)
		}
	}
	return &Stitcher{profiles: profiles, points: points}, nil
}

// Len returns the total number of triangles the stitcher produces,
// 2 × profiles × (points − 1).
func (s *Stitcher) Len() int {
	return 2 * len(s.profiles) * (s.points - 1)
}

// ReadTriangles writes triangles into dst and returns the number written.
// It returns io.EOF once every triangle has been read.
func (s *Stitcher) ReadTriangles(dst []Triangle) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	total := s.Len()
	for n < len(dst) && s.next < total {
		dst[n] = s.triangle(s.next)
		n++
		s.next++
	}
	if s.next == total {
		return n, io.EOF
	}
	return n, nil
}

// Reset rewinds the stitcher to its first triangle.
func (s *Stitcher) Reset() { s.next = 0 }

// triangle returns the k'th triangle. Each quad between profiles i, i+1 and
// points j, j+1 is split along the (current[j], next[j]) diagonal.
func (s *Stitcher) triangle(k int) Triangle {
	quad := k / 2
	i := quad / (s.points - 1)
	j := quad % (s.points - 1)
	current := s.profiles[i]
	next := s.profiles[(i+1)%len(s.profiles)]
	if k%2 == 0 {
		return Triangle{current[j].Cartesian(), next[j].Cartesian(), current[j+1].Cartesian()}
	}
	return Triangle{current[j+1].Cartesian(), next[j].Cartesian(), next[j+1].Cartesian()}
}

// Stitch returns all triangles joining the profiles.
func Stitch(profiles []Profile) (Mesh, error) {
	s, err := NewStitcher(profiles)
	if err != nil {
		return nil, err
	}
	mesh := make(Mesh, s.Len())
	n, err := s.ReadTriangles(mesh)
	if err != io.EOF || n != len(mesh) {
		panic("bug: stitcher did not emit all triangles")
	}
	return mesh, nil
}

// Tessellator revolves a generatrix around the horn axis.
type Tessellator struct {
	// AzimuthSteps is the number of profiles, evenly spaced over [0, 2π).
	AzimuthSteps int
	// Sampler picks the axial positions of each profile.
	Sampler Sampler
	// Concurrent is the number of goroutines generating profiles.
	// Values of 1 or less generate on the calling goroutine.
	Concurrent int
	// CurveLength, if positive, fits every profile's straight length so
	// that the wall curve length equals CurveLength. The length argument
	// of Profiles and Mesh is then ignored.
	CurveLength float64
}

// Profiles returns one profile per azimuth.
func (t Tessellator) Profiles(g Generatrix, length float64) ([]Profile, error) {
	if t.AzimuthSteps < 2 {
		return nil, configErrf("tessellate", ErrParameter, "azimuth steps %d must be 2 or larger", t.AzimuthSteps)
	}
	if t.Sampler == nil {
		return nil, configErrf("tessellate", ErrParameter, "nil sampler")
	}
	thetas := Azimuths(t.AzimuthSteps)
	profiles := make([]Profile, len(thetas))
	errs := make([]error, len(thetas))
	generate := func(i int) {
		if t.CurveLength > 0 {
			profiles[i], _, errs[i] = FitCurveLength(g, thetas[i], t.CurveLength, t.Sampler)
			return
		}
		profiles[i], errs[i] = GenerateProfile(g, length, thetas[i], t.Sampler)
	}
	if t.Concurrent <= 1 {
		for i := range thetas {
			generate(i)
			if errs[i] != nil {
				break
			}
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, t.Concurrent)
		for i := range thetas {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() {
					<-sem
					wg.Done()
				}()
				generate(i)
			}(i)
		}
		wg.Wait()
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("azimuth %d (θ=%g): %w", i, thetas[i], err)
		}
	}
	return profiles, nil
}

// Stitcher generates the profiles and returns a Stitcher over them.
func (t Tessellator) Stitcher(g Generatrix, length float64) (*Stitcher, error) {
	profiles, err := t.Profiles(g, length)
	if err != nil {
		return nil, err
	}
	return NewStitcher(profiles)
}

// Mesh returns the full triangle mesh of the horn surface.
func (t Tessellator) Mesh(g Generatrix, length float64) (Mesh, error) {
	profiles, err := t.Profiles(g, length)
	if err != nil {
		return nil, err
	}
	return Stitch(profiles)
}

// GenerateMesh revolves g into azimuthSteps profiles sampled by s and
// stitches them into a closed triangle mesh using all available CPUs.
func GenerateMesh(g Generatrix, length float64, azimuthSteps int, s Sampler) (Mesh, error) {
	t := Tessellator{
		AzimuthSteps: azimuthSteps,
		Sampler:      s,
		Concurrent:   runtime.NumCPU(),
	}
	return t.Mesh(g, length)
}
