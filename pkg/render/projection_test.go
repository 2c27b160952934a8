package render

import (
	"context"
	"math"
	"testing"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

func testScene() *scene.Scene {
	s := scene.New()
	s.AddMesh("cube", mesh.NewCube(mesh.Vec3{}, 2), scene.Style{})
	s.Camera.Position = mesh.Vec3{Z: 10}
	s.Camera.Target = mesh.Vec3{}
	s.Camera.Up = mesh.Vec3{Y: 1}
	return s
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("defaults = %dx%d", o.Width, o.Height)
	}
	if o.Background != DefaultBackground {
		t.Errorf("background = %q", o.Background)
	}

	bad := Options{Background: "white"}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}

	badPlane := Options{ClipPlanes: []scene.ClipPlane{{}}}
	if err := badPlane.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidPlane) {
		t.Errorf("error = %v, want INVALID_PLANE", err)
	}
}

func TestProjectCube(t *testing.T) {
	s := testScene()
	frame, err := Project(context.Background(), s, Options{Width: 200, Height: 200})
	if err != nil {
		t.Fatal(err)
	}

	// A cube has 12 triangles; all are in front of the camera.
	if len(frame.Polygons) != 12 {
		t.Errorf("polygons = %d, want 12", len(frame.Polygons))
	}

	// Depth sorted far to near.
	for i := 1; i < len(frame.Polygons); i++ {
		if frame.Polygons[i].Depth > frame.Polygons[i-1].Depth {
			t.Fatalf("polygons not sorted far to near at %d", i)
		}
	}

	for _, p := range frame.Polygons {
		if p.ActorID == "" || p.Name != "cube" {
			t.Fatalf("polygon missing actor identity: %+v", p)
		}
	}
}

func TestProjectParallelKnownPoint(t *testing.T) {
	s := scene.New()
	s.AddMesh("axis", mesh.NewLine(mesh.Vec3{X: -1}, mesh.Vec3{X: 1}), scene.Style{})
	s.Camera = scene.Camera{
		Position:      mesh.Vec3{Z: 5},
		Up:            mesh.Vec3{Y: 1},
		Parallel:      true,
		ParallelScale: 1,
	}

	frame, err := Project(context.Background(), s, Options{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(frame.Segments))
	}
	seg := frame.Segments[0]
	// ParallelScale 1 on a 100px frame maps 1 world unit to 50px.
	if math.Abs(seg.From.X-0) > 1e-9 || math.Abs(seg.To.X-100) > 1e-9 {
		t.Errorf("segment X = %g..%g, want 0..100", seg.From.X, seg.To.X)
	}
	if math.Abs(seg.From.Y-50) > 1e-9 {
		t.Errorf("segment Y = %g, want 50", seg.From.Y)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	s := scene.New()
	s.AddMesh("behind", mesh.NewCube(mesh.Vec3{Z: 20}, 1), scene.Style{})
	s.Camera.Position = mesh.Vec3{Z: 10}
	s.Camera.Up = mesh.Vec3{Y: 1}

	frame, err := Project(context.Background(), s, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Polygons) != 0 {
		t.Errorf("polygons behind camera = %d, want 0", len(frame.Polygons))
	}
}

func TestProjectWireframe(t *testing.T) {
	s := testScene()
	frame, err := Project(context.Background(), s, Options{Wireframe: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Polygons) != 0 {
		t.Errorf("wireframe emitted %d polygons", len(frame.Polygons))
	}
	if len(frame.Segments) != 36 {
		t.Errorf("segments = %d, want 12 triangles * 3", len(frame.Segments))
	}
}

func TestProjectClipPlane(t *testing.T) {
	s := testScene()
	full, err := Project(context.Background(), s, Options{})
	if err != nil {
		t.Fatal(err)
	}

	clipped, err := Project(context.Background(), s, Options{
		ClipPlanes: []scene.ClipPlane{{Normal: mesh.Vec3{X: 1}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(clipped.Polygons) == 0 || len(clipped.Polygons) == len(full.Polygons) {
		t.Errorf("clip changed polygons %d -> %d, want a proper subset shape",
			len(full.Polygons), len(clipped.Polygons))
	}
}

func TestProjectGroundPlane(t *testing.T) {
	s := testScene()
	frame, err := Project(context.Background(), s, Options{GroundPlane: true})
	if err != nil {
		t.Fatal(err)
	}

	var ground []Polygon
	for _, p := range frame.Polygons {
		if p.Name == "ground" {
			ground = append(ground, p)
		}
	}
	if len(ground) != 2 {
		t.Fatalf("ground polygons = %d, want 2", len(ground))
	}
	for _, p := range ground {
		if p.ActorID != "" {
			t.Errorf("ground plane should not carry an actor ID, got %q", p.ActorID)
		}
	}

	// Empty scenes get no ground plane.
	empty, err := Project(context.Background(), scene.New(), Options{GroundPlane: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Polygons) != 0 {
		t.Errorf("empty scene emitted %d polygons", len(empty.Polygons))
	}
}

func TestProjectWorldLabels(t *testing.T) {
	s := testScene()
	frame, err := Project(context.Background(), s, Options{
		Width:  200,
		Height: 200,
		Labels: []WorldLabel{
			{Text: "cube", At: mesh.Vec3{}, Color: scene.ColorPicked},
			{Text: "behind", At: mesh.Vec3{Z: 20}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(frame.Labels) != 1 {
		t.Fatalf("labels = %d, want 1 (anchors behind the camera are dropped)", len(frame.Labels))
	}
	l := frame.Labels[0]
	if l.Text != "cube" || l.Color != scene.ColorPicked {
		t.Errorf("label = %+v", l)
	}
	// The scene center projects to the frame center.
	if math.Abs(l.Pos.X-100) > 1e-9 || math.Abs(l.Pos.Y-100) > 1e-9 {
		t.Errorf("label position = %v, want the frame center", l.Pos)
	}
}

func TestProjectShadingVariesByFace(t *testing.T) {
	s := testScene()
	frame, err := Project(context.Background(), s, Options{})
	if err != nil {
		t.Fatal(err)
	}
	fills := make(map[string]bool)
	for _, p := range frame.Polygons {
		fills[p.Fill] = true
	}
	if len(fills) < 2 {
		t.Errorf("flat shading produced %d distinct fills, want at least 2", len(fills))
	}

	noShade, err := Project(context.Background(), s, Options{NoShading: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range noShade.Polygons {
		if p.Fill != scene.ColorDefault {
			t.Fatalf("unshaded fill = %q, want %q", p.Fill, scene.ColorDefault)
		}
	}
}
