package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// ReadSTL decodes an STL stream, autodetecting ASCII and binary layout.
// STL carries triangle soup only: every triangle gets its own three
// points and no connectivity is reconstructed.
func ReadSTL(r io.Reader) (*mesh.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	if looksASCII(data) {
		return readSTLASCII(bytes.NewReader(data))
	}
	return readSTLBinary(bytes.NewReader(data))
}

// looksASCII reports whether the payload is an ASCII STL file. The
// "solid" prefix alone is not enough: binary exporters commonly write
// it into the 80-byte header, so the body must also contain a facet
// keyword.
func looksASCII(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(head, []byte("facet"))
}

func readSTLASCII(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var tri []int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] != "vertex" {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
		}
		var p mesh.Vec3
		var err error
		if p.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if p.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if p.Z, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tri = append(tri, m.AddPoint(p))
		if len(tri) == 3 {
			m.AddTriangle(tri[0], tri[1], tri[2])
			tri = tri[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	if len(tri) != 0 {
		return nil, fmt.Errorf("truncated facet: %d trailing vertices", len(tri))
	}
	return m, nil
}

func readSTLBinary(r io.Reader) (*mesh.Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read stl header: %w", err)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read stl triangle count: %w", err)
	}

	m := mesh.New()
	var rec struct {
		Normal   [3]float32
		Vertices [3][3]float32
		Attr     uint16
	}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("read stl triangle %d: %w", i, err)
		}
		var idx [3]int
		for j, v := range rec.Vertices {
			idx[j] = m.AddPoint(mesh.Vec3{
				X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2]),
			})
		}
		m.AddTriangle(idx[0], idx[1], idx[2])
	}
	return m, nil
}

// WriteSTL encodes the triangles of a mesh as binary STL. Line cells
// are dropped, as STL has no representation for them.
func WriteSTL(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)
	header := make([]byte, 80)
	copy(header, "binary stl")
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("write stl count: %w", err)
	}
	for i := range m.Triangles {
		n := m.TriangleNormal(i)
		rec := make([]float32, 0, 12)
		rec = append(rec, float32(n.X), float32(n.Y), float32(n.Z))
		for _, idx := range m.Triangles[i] {
			p := m.Points[idx]
			rec = append(rec, float32(p.X), float32(p.Y), float32(p.Z))
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("write stl triangle %d: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("write stl triangle %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write stl: %w", err)
	}
	return nil
}

// stlTolerance is the float32 rounding error bound for STL round trips.
const stlTolerance = 1e-6

// STLAlmostEqual reports whether two points are equal within the STL
// float32 storage tolerance. Exported for tests of STL pipelines.
func STLAlmostEqual(a, b mesh.Vec3) bool {
	return math.Abs(a.X-b.X) < stlTolerance &&
		math.Abs(a.Y-b.Y) < stlTolerance &&
		math.Abs(a.Z-b.Z) < stlTolerance
}
