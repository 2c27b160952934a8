package mesh

import "fmt"

// Triangle indexes three points in a Mesh point set.
type Triangle [3]int

// Line indexes two points in a Mesh point set.
type Line [2]int

// Mesh is a surface mesh: triangles and line segments over a shared
// point set. It is the canonical renderable representation that consumer
// libraries attach to their domain objects.
//
// All cell indices must be valid indices into Points. Use [Mesh.Validate]
// to check a mesh built by hand; the constructors and file readers in
// meshio always produce valid meshes.
type Mesh struct {
	Points    []Vec3
	Triangles []Triangle
	Lines     []Line
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// NumPoints returns the number of points in the mesh.
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumCells returns the total number of cells (triangles plus lines).
func (m *Mesh) NumCells() int { return len(m.Triangles) + len(m.Lines) }

// IsEmpty reports whether the mesh has no cells.
func (m *Mesh) IsEmpty() bool { return m.NumCells() == 0 }

// Validate checks that every cell references a valid point index.
func (m *Mesh) Validate() error {
	n := len(m.Points)
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return fmt.Errorf("triangle %d references point %d, mesh has %d points", i, idx, n)
			}
		}
	}
	for i, l := range m.Lines {
		for _, idx := range l {
			if idx < 0 || idx >= n {
				return fmt.Errorf("line %d references point %d, mesh has %d points", i, idx, n)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Points:    make([]Vec3, len(m.Points)),
		Triangles: make([]Triangle, len(m.Triangles)),
		Lines:     make([]Line, len(m.Lines)),
	}
	copy(out.Points, m.Points)
	copy(out.Triangles, m.Triangles)
	copy(out.Lines, m.Lines)
	return out
}

// AddPoint appends a point and returns its index.
func (m *Mesh) AddPoint(p Vec3) int {
	m.Points = append(m.Points, p)
	return len(m.Points) - 1
}

// AddTriangle appends a triangle cell.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// AddLine appends a line cell.
func (m *Mesh) AddLine(a, b int) {
	m.Lines = append(m.Lines, Line{a, b})
}

// AddPolygon triangulates a convex polygon given as point indices and
// appends the resulting triangle fan. Polygons with fewer than three
// vertices are ignored.
func (m *Mesh) AddPolygon(indices []int) {
	for i := 1; i+1 < len(indices); i++ {
		m.AddTriangle(indices[0], indices[i], indices[i+1])
	}
}

// Bounds returns the axis-aligned bounding box of the mesh points.
// An empty mesh returns the zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Points[0], Max: m.Points[0]}
	for _, p := range m.Points[1:] {
		b = b.ExpandPoint(p)
	}
	return b
}

// Center returns the center of the mesh bounding box.
func (m *Mesh) Center() Vec3 {
	return m.Bounds().Center()
}

// TriangleNormal returns the unit normal of triangle i, following the
// right-hand winding rule. Degenerate triangles return the zero vector.
func (m *Mesh) TriangleNormal(i int) Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Points[t[0]], m.Points[t[1]], m.Points[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// TriangleCenter returns the centroid of triangle i.
func (m *Mesh) TriangleCenter(i int) Vec3 {
	t := m.Triangles[i]
	return m.Points[t[0]].Add(m.Points[t[1]]).Add(m.Points[t[2]]).Scale(1.0 / 3.0)
}

// Merge appends all cells of other into m, reindexing points.
// The other mesh is not modified.
func (m *Mesh) Merge(other *Mesh) {
	offset := len(m.Points)
	m.Points = append(m.Points, other.Points...)
	for _, t := range other.Triangles {
		m.AddTriangle(t[0]+offset, t[1]+offset, t[2]+offset)
	}
	for _, l := range other.Lines {
		m.AddLine(l[0]+offset, l[1]+offset)
	}
}

// Translate moves every point of the mesh by d and returns m.
func (m *Mesh) Translate(d Vec3) *Mesh {
	for i := range m.Points {
		m.Points[i] = m.Points[i].Add(d)
	}
	return m
}

// Scale scales every point of the mesh about the origin and returns m.
func (m *Mesh) Scale(s float64) *Mesh {
	for i := range m.Points {
		m.Points[i] = m.Points[i].Scale(s)
	}
	return m
}

// EdgeSegments returns the line cells of the mesh as point pairs.
// Used to build edge adapters for picking and highlighting.
func (m *Mesh) EdgeSegments() [][2]Vec3 {
	out := make([][2]Vec3, len(m.Lines))
	for i, l := range m.Lines {
		out[i] = [2]Vec3{m.Points[l[0]], m.Points[l[1]]}
	}
	return out
}
