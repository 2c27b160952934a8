package meshio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// meshJSON is the serialized form of a mesh. Points are [x,y,z] triples
// to keep the payload compact and language-neutral.
type meshJSON struct {
	Points    [][3]float64 `json:"points"`
	Triangles [][3]int     `json:"triangles,omitempty"`
	Lines     [][2]int     `json:"lines,omitempty"`
}

func toJSON(m *mesh.Mesh) meshJSON {
	out := meshJSON{
		Points:    make([][3]float64, len(m.Points)),
		Triangles: make([][3]int, len(m.Triangles)),
		Lines:     make([][2]int, len(m.Lines)),
	}
	for i, p := range m.Points {
		out.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for i, t := range m.Triangles {
		out.Triangles[i] = [3]int(t)
	}
	for i, l := range m.Lines {
		out.Lines[i] = [2]int(l)
	}
	return out
}

func fromJSON(in meshJSON) (*mesh.Mesh, error) {
	m := mesh.New()
	for _, p := range in.Points {
		m.AddPoint(mesh.Vec3{X: p[0], Y: p[1], Z: p[2]})
	}
	for _, t := range in.Triangles {
		m.AddTriangle(t[0], t[1], t[2])
	}
	for _, l := range in.Lines {
		m.AddLine(l[0], l[1])
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteJSON encodes a mesh as JSON and writes it to w. The output can
// be re-imported with [ReadJSON] for round-trip processing; geometry
// and connectivity are preserved exactly.
func WriteJSON(m *mesh.Mesh, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(m)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON mesh from r.
//
// The input must be an object with a "points" array of [x,y,z] triples
// and optional "triangles" and "lines" index arrays. ReadJSON returns
// an error if the JSON is malformed or any cell references a point
// index out of range.
func ReadJSON(r io.Reader) (*mesh.Mesh, error) {
	var data meshJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	m, err := fromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}
	return m, nil
}

// MarshalMesh returns the JSON encoding of a mesh as bytes.
// Used for cache keys and HTTP payloads.
func MarshalMesh(m *mesh.Mesh) ([]byte, error) {
	return json.Marshal(toJSON(m))
}

// UnmarshalMesh decodes JSON bytes into a mesh.
func UnmarshalMesh(data []byte) (*mesh.Mesh, error) {
	var in meshJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	m, err := fromJSON(in)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}
	return m, nil
}
