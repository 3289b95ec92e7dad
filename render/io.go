package render

import "io"

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

type triangle3Buffer struct {
	buf []Triangle3
}

// ReadTriangles implements Renderer, draining the buffer.
func (b *triangle3Buffer) ReadTriangles(t []Triangle3) (int, error) {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	if len(b.buf) == 0 {
		return n, io.EOF
	}
	return n, nil
}
