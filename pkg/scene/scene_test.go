package scene

import (
	"testing"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

type namedThing struct{ name string }

func (n namedThing) Name() string { return n.name }

type identifiedThing struct{ id string }

func (i identifiedThing) ID() string { return i.id }

type namedAndIdentified struct{}

func (namedAndIdentified) Name() string { return "named" }
func (namedAndIdentified) ID() string   { return "id" }

func TestMeshObjectName(t *testing.T) {
	tests := []struct {
		name   string
		custom any
		want   string
	}{
		{"Named", namedThing{name: "body-1"}, "body-1"},
		{"Identified", identifiedThing{id: "0xA1"}, "0xA1"},
		{"NamedWinsOverIdentified", namedAndIdentified{}, "named"},
		{"Plain", 42, UnknownName},
		{"Nil", nil, UnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mo := NewMeshObject(tt.custom, mesh.NewCube(mesh.Vec3{}, 1))
			if got := mo.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdgeName(t *testing.T) {
	mo := NewMeshObject(namedThing{name: "body"}, mesh.NewCube(mesh.Vec3{}, 1))
	e := mo.AddEdge("7", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))

	if got := e.Name(); got != "body-7" {
		t.Errorf("edge name = %q, want %q", got, "body-7")
	}
	if e.Parent != mo {
		t.Error("edge parent not linked")
	}

	orphan := &Edge{EdgeID: "3"}
	if got := orphan.Name(); got != "Unknown-3" {
		t.Errorf("orphan edge name = %q, want %q", got, "Unknown-3")
	}
}

func TestSceneAddAndRemove(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("new scene has %d actors", s.Len())
	}

	a := s.AddMesh("cube", mesh.NewCube(mesh.Vec3{}, 1), Style{})
	if a.Style.Color != ColorDefault {
		t.Errorf("zero style color = %q, want default %q", a.Style.Color, ColorDefault)
	}
	if a.ID == "" {
		t.Error("actor ID not assigned")
	}

	got, ok := s.Actor(a.ID)
	if !ok || got != a {
		t.Error("Actor lookup by ID failed")
	}

	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("after remove, len = %d", s.Len())
	}
	if err := s.Remove(a.ID); !errors.Is(err, errors.ErrCodeObjectNotFound) {
		t.Errorf("removing twice: error = %v, want OBJECT_NOT_FOUND", err)
	}
}

func TestSceneAddMeshObjectWithEdges(t *testing.T) {
	mo := NewMeshObject(namedThing{name: "body"}, mesh.NewCube(mesh.Vec3{}, 2))
	mo.AddEdge("1", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))
	mo.AddEdge("2", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{Y: 1}))

	s := New()
	a := s.Add(mo, Style{})

	if s.Len() != 3 {
		t.Fatalf("len = %d, want body + 2 edges = 3", s.Len())
	}
	if mo.ActorID != a.ID {
		t.Error("mesh object not bound to actor")
	}

	actors := s.Actors()
	if actors[1].Name != "body-1" || actors[2].Name != "body-2" {
		t.Errorf("edge actor names = %q, %q", actors[1].Name, actors[2].Name)
	}
	for _, ea := range actors[1:] {
		if !ea.IsEdge() {
			t.Errorf("actor %s should be an edge", ea.Name)
		}
		if ea.Style.Color != ColorEdge {
			t.Errorf("edge color = %q, want %q", ea.Style.Color, ColorEdge)
		}
		if !ea.Hidden {
			t.Errorf("edge actor %s should start hidden", ea.Name)
		}
	}
}

func TestSceneFilterName(t *testing.T) {
	s := New()
	s.AddMesh("front-face", mesh.NewCube(mesh.Vec3{}, 1), Style{})
	s.AddMesh("back-face", mesh.NewCube(mesh.Vec3{X: 2}, 1), Style{})
	s.AddMesh("shaft", mesh.NewCylinder(mesh.Vec3{}, 0.5, 2, 8), Style{})

	if err := s.FilterName("face$"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Visible()); got != 2 {
		t.Errorf("visible after filter = %d, want 2", got)
	}

	if err := s.FilterName(""); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Visible()); got != 3 {
		t.Errorf("visible after clearing filter = %d, want 3", got)
	}

	if err := s.FilterName("("); !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("bad regex: error = %v, want INVALID_OPTION", err)
	}

	// Edge visibility belongs to pickers; clearing the filter must not
	// reveal edge actors.
	mo := NewMeshObject(namedThing{name: "front-face"}, mesh.NewCube(mesh.Vec3{}, 1))
	mo.AddEdge("1", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))
	s.Add(mo, Style{})
	if err := s.FilterName(""); err != nil {
		t.Fatal(err)
	}
	if edge, _ := s.Actor(mo.Edges[0].ActorID); !edge.Hidden {
		t.Error("clearing the name filter unhid an edge actor")
	}
}

func TestSceneBounds(t *testing.T) {
	s := New()
	if !s.Bounds().IsEmpty() {
		t.Error("empty scene should have empty bounds")
	}

	s.AddMesh("a", mesh.NewCube(mesh.Vec3{}, 2), Style{})
	b := s.AddMesh("b", mesh.NewCube(mesh.Vec3{X: 10}, 2), Style{})

	bounds := s.Bounds()
	if bounds.Min.X != -1 || bounds.Max.X != 11 {
		t.Errorf("bounds X = [%g, %g], want [-1, 11]", bounds.Min.X, bounds.Max.X)
	}

	b.Hidden = true
	bounds = s.Bounds()
	if bounds.Max.X != 1 {
		t.Errorf("bounds ignore hidden: Max.X = %g, want 1", bounds.Max.X)
	}
}

func TestSceneCombine(t *testing.T) {
	s := New()
	s.AddMesh("a", mesh.NewCube(mesh.Vec3{}, 1), Style{})
	hidden := s.AddMesh("b", mesh.NewCube(mesh.Vec3{X: 5}, 1), Style{})
	hidden.Hidden = true

	mb := s.Combine()
	if mb.Len() != 1 {
		t.Errorf("combined blocks = %d, want 1 (hidden excluded)", mb.Len())
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr bool
	}{
		{"Default", DefaultStyle(), false},
		{"Edge", EdgeStyle(), false},
		{"BadColor", Style{Color: "red", Opacity: 1}, true},
		{"OpacityTooHigh", Style{Color: ColorDefault, Opacity: 1.5}, true},
		{"NegativeLineWidth", Style{Color: ColorDefault, Opacity: 1, LineWidth: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClipPlaneValidate(t *testing.T) {
	if err := DefaultClipPlane().Validate(); err != nil {
		t.Errorf("default clip plane invalid: %v", err)
	}
	bad := ClipPlane{}
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeInvalidPlane) {
		t.Errorf("zero normal: error = %v, want INVALID_PLANE", err)
	}
}

func TestPalette(t *testing.T) {
	colors := Palette(5)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	seen := make(map[string]bool)
	for _, c := range colors {
		if seen[c] {
			t.Errorf("duplicate palette color %s", c)
		}
		seen[c] = true
		if err := errors.ValidateHexColor(c); err != nil {
			t.Errorf("palette color %q invalid: %v", c, err)
		}
	}
	if Palette(0) != nil {
		t.Error("Palette(0) should be nil")
	}
}
