package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// ReadOBJ decodes a Wavefront OBJ stream into a mesh.
//
// Vertex (v), face (f) and polyline (l) records are honored. Faces with
// more than three vertices are fan-triangulated. Texture and normal
// indices (v/vt/vn) are accepted and discarded, as are material and
// group statements. Negative indices follow the OBJ convention of
// counting back from the most recent vertex.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
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
			m.AddPoint(p)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				idx, err := objIndex(f, m.NumPoints())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			m.AddPolygon(indices)
		case "l":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: polyline needs at least 2 vertices", lineNo)
			}
			prev := -1
			for _, f := range fields[1:] {
				idx, err := objIndex(f, m.NumPoints())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if prev >= 0 {
					m.AddLine(prev, idx)
				}
				prev = idx
			}
		default:
			// vn, vt, g, o, s, usemtl, mtllib: not represented.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid obj geometry: %w", err)
	}
	return m, nil
}

// objIndex parses one face vertex reference ("7", "7/1", "7//2", "-1")
// into a zero-based point index.
func objIndex(field string, numPoints int) (int, error) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q: %w", field, err)
	}
	if v < 0 {
		v = numPoints + v + 1
	}
	if v < 1 || v > numPoints {
		return 0, fmt.Errorf("vertex reference %d out of range (have %d vertices)", v, numPoints)
	}
	return v - 1, nil
}

// WriteOBJ encodes a mesh as Wavefront OBJ.
func WriteOBJ(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Points {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	for _, l := range m.Lines {
		fmt.Fprintf(bw, "l %d %d\n", l[0]+1, l[1]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}
