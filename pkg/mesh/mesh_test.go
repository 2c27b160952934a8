package mesh

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Ops(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Add", Vec3{1, 2, 3}.Add(Vec3{4, 5, 6}), Vec3{5, 7, 9}},
		{"Sub", Vec3{4, 5, 6}.Sub(Vec3{1, 2, 3}), Vec3{3, 3, 3}},
		{"Scale", Vec3{1, -2, 3}.Scale(2), Vec3{2, -4, 6}},
		{"Cross", Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1}},
		{"NormalizeZero", Vec3{}.Normalize(), Vec3{}},
		{"Lerp", Vec3{0, 0, 0}.Lerp(Vec3{2, 4, 6}, 0.5), Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("length = %v, want 1", v.Length())
	}
	if !vecAlmostEqual(v, Vec3{0.6, 0.8, 0}) {
		t.Errorf("got %v, want (0.6, 0.8, 0)", v)
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Mesh
		wantErr bool
	}{
		{
			name:  "Empty",
			build: func() *Mesh { return New() },
		},
		{
			name: "Valid",
			build: func() *Mesh {
				m := New()
				m.AddPoint(Vec3{})
				m.AddPoint(Vec3{X: 1})
				m.AddPoint(Vec3{Y: 1})
				m.AddTriangle(0, 1, 2)
				m.AddLine(0, 1)
				return m
			},
		},
		{
			name: "TriangleOutOfRange",
			build: func() *Mesh {
				m := New()
				m.AddPoint(Vec3{})
				m.AddTriangle(0, 1, 2)
				return m
			},
			wantErr: true,
		},
		{
			name: "LineNegativeIndex",
			build: func() *Mesh {
				m := New()
				m.AddPoint(Vec3{})
				m.AddLine(-1, 0)
				return m
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	m := New()
	m.AddPoint(Vec3{-1, -2, -3})
	m.AddPoint(Vec3{4, 5, 6})
	m.AddPoint(Vec3{0, 0, 0})

	b := m.Bounds()
	if !vecAlmostEqual(b.Min, Vec3{-1, -2, -3}) || !vecAlmostEqual(b.Max, Vec3{4, 5, 6}) {
		t.Errorf("bounds = %+v", b)
	}
	if !vecAlmostEqual(b.Center(), Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("center = %v", b.Center())
	}
}

func TestMeshMerge(t *testing.T) {
	a := NewCube(Vec3{}, 1)
	b := NewCube(Vec3{X: 5}, 1)
	nPts, nTris := a.NumPoints(), len(a.Triangles)

	a.Merge(b)

	if a.NumPoints() != 2*nPts {
		t.Errorf("points = %d, want %d", a.NumPoints(), 2*nPts)
	}
	if len(a.Triangles) != 2*nTris {
		t.Errorf("triangles = %d, want %d", len(a.Triangles), 2*nTris)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("merged mesh invalid: %v", err)
	}
	// Reindexed cells must reference the second cube's points.
	if a.Bounds().Max.X < 5 {
		t.Errorf("merged bounds do not include second cube: %+v", a.Bounds())
	}
}

func TestTriangleNormal(t *testing.T) {
	m := New()
	m.AddPoint(Vec3{0, 0, 0})
	m.AddPoint(Vec3{1, 0, 0})
	m.AddPoint(Vec3{0, 1, 0})
	m.AddTriangle(0, 1, 2)

	if n := m.TriangleNormal(0); !vecAlmostEqual(n, Vec3{0, 0, 1}) {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestAddPolygonFan(t *testing.T) {
	m := New()
	for _, p := range []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		m.AddPoint(p)
	}
	m.AddPolygon([]int{0, 1, 2, 3})
	if len(m.Triangles) != 2 {
		t.Fatalf("triangles = %d, want 2", len(m.Triangles))
	}
	// Degenerate polygons add nothing.
	m.AddPolygon([]int{0, 1})
	if len(m.Triangles) != 2 {
		t.Errorf("degenerate polygon added cells")
	}
}

func TestPrimitivesValid(t *testing.T) {
	tests := []struct {
		name string
		m    *Mesh
	}{
		{"Plane", NewPlane(2, 2, 4)},
		{"Cube", NewCube(Vec3{}, 1)},
		{"Sphere", NewSphere(Vec3{}, 1, 8)},
		{"Cylinder", NewCylinder(Vec3{}, 1, 2, 12)},
		{"Line", NewLine(Vec3{}, Vec3{X: 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); err != nil {
				t.Fatalf("invalid mesh: %v", err)
			}
			if tt.m.IsEmpty() {
				t.Error("mesh is empty")
			}
		})
	}
}

func TestSphereRadius(t *testing.T) {
	s := NewSphere(Vec3{X: 1}, 2, 6)
	for i, p := range s.Points {
		if d := p.Distance(Vec3{X: 1}); !almostEqual(d, 2) {
			t.Fatalf("point %d at distance %v from center, want 2", i, d)
		}
	}
}
