package picking

import (
	"context"
	"math"
	"testing"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

func TestIntersectTriangle(t *testing.T) {
	a := mesh.Vec3{}
	b := mesh.Vec3{X: 1}
	c := mesh.Vec3{Y: 1}

	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		want  bool
	}{
		{
			name:  "CenterHit",
			ray:   Ray{Origin: mesh.Vec3{X: 0.25, Y: 0.25, Z: 5}, Dir: mesh.Vec3{Z: -1}},
			wantT: 5,
			want:  true,
		},
		{
			name: "MissOutside",
			ray:  Ray{Origin: mesh.Vec3{X: 2, Y: 2, Z: 5}, Dir: mesh.Vec3{Z: -1}},
			want: false,
		},
		{
			name: "BehindOrigin",
			ray:  Ray{Origin: mesh.Vec3{X: 0.25, Y: 0.25, Z: -5}, Dir: mesh.Vec3{Z: -1}},
			want: false,
		},
		{
			name: "ParallelToPlane",
			ray:  Ray{Origin: mesh.Vec3{X: 0.25, Y: 0.25, Z: 5}, Dir: mesh.Vec3{X: 1}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectTriangle(tt.ray, a, b, c)
			if ok != tt.want {
				t.Fatalf("ok = %v, want %v", ok, tt.want)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("t = %g, want %g", got, tt.wantT)
			}
		})
	}
}

func TestIntersectBounds(t *testing.T) {
	box := mesh.NewCube(mesh.Vec3{}, 2).Bounds()

	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"ThroughCenter", Ray{Origin: mesh.Vec3{Z: 5}, Dir: mesh.Vec3{Z: -1}}, true},
		{"Miss", Ray{Origin: mesh.Vec3{X: 5, Z: 5}, Dir: mesh.Vec3{Z: -1}}, false},
		{"FromInside", Ray{Origin: mesh.Vec3{}, Dir: mesh.Vec3{X: 1}}, true},
		{"PointingAway", Ray{Origin: mesh.Vec3{Z: 5}, Dir: mesh.Vec3{Z: 1}}, false},
		{"AxisParallelInsideSlab", Ray{Origin: mesh.Vec3{Y: 0.5, Z: 5}, Dir: mesh.Vec3{Z: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntersectBounds(tt.ray, box); got != tt.want {
				t.Errorf("IntersectBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func pickScene() *scene.Scene {
	s := scene.New()
	s.AddMesh("near", mesh.NewCube(mesh.Vec3{}, 1), scene.Style{})
	s.AddMesh("far", mesh.NewCube(mesh.Vec3{Z: -5}, 1), scene.Style{})
	s.Camera.Position = mesh.Vec3{Z: 10}
	s.Camera.Target = mesh.Vec3{}
	s.Camera.Up = mesh.Vec3{Y: 1}
	return s
}

func TestHitTestNearestWins(t *testing.T) {
	s := pickScene()
	ray := Ray{Origin: mesh.Vec3{Z: 10}, Dir: mesh.Vec3{Z: -1}}

	hit, ok := HitTest(s, ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Actor.Name != "near" {
		t.Errorf("hit %q, want the nearer actor", hit.Actor.Name)
	}
	if math.Abs(hit.Distance-9.5) > 1e-9 {
		t.Errorf("distance = %g, want 9.5", hit.Distance)
	}
}

func TestHitTestSkipsHidden(t *testing.T) {
	s := pickScene()
	s.Actors()[0].Hidden = true

	hit, ok := HitTest(s, Ray{Origin: mesh.Vec3{Z: 10}, Dir: mesh.Vec3{Z: -1}})
	if !ok || hit.Actor.Name != "far" {
		t.Errorf("hit = %+v, want the far actor once near is hidden", hit)
	}
}

func TestRayFromScreenCenter(t *testing.T) {
	cam := scene.Camera{Position: mesh.Vec3{Z: 10}, Up: mesh.Vec3{Y: 1}, FOV: 30}

	ray := RayFromScreen(cam, 200, 100, 100, 50)
	if ray.Origin != cam.Position {
		t.Errorf("origin = %v, want camera position", ray.Origin)
	}
	want := mesh.Vec3{Z: -1}
	if math.Abs(ray.Dir.X-want.X) > 1e-9 || math.Abs(ray.Dir.Z-want.Z) > 1e-9 {
		t.Errorf("center ray dir = %v, want %v", ray.Dir, want)
	}
}

func TestRayFromScreenParallel(t *testing.T) {
	cam := scene.Camera{
		Position: mesh.Vec3{Z: 10}, Up: mesh.Vec3{Y: 1},
		Parallel: true, ParallelScale: 1,
	}

	// Left edge of a 100x100 viewport is one world unit left of center.
	ray := RayFromScreen(cam, 100, 100, 0, 50)
	if math.Abs(ray.Origin.X-(-1)) > 1e-9 {
		t.Errorf("origin.X = %g, want -1", ray.Origin.X)
	}
	if ray.Dir != (mesh.Vec3{Z: -1}) {
		t.Errorf("dir = %v, want forward", ray.Dir)
	}
}

func TestPickerToggle(t *testing.T) {
	s := pickScene()
	p := NewPicker(s)
	a := s.Actors()[0]

	if !p.Toggle(a) {
		t.Fatal("first toggle should pick")
	}
	if a.Style.Color != scene.ColorPicked {
		t.Errorf("picked color = %q, want %q", a.Style.Color, scene.ColorPicked)
	}
	if !p.IsPicked("near") {
		t.Error("IsPicked = false after pick")
	}

	if p.Toggle(a) {
		t.Fatal("second toggle should unpick")
	}
	if a.Style.Color != scene.ColorDefault {
		t.Errorf("restored color = %q, want %q", a.Style.Color, scene.ColorDefault)
	}
}

func TestPickerEdgeColor(t *testing.T) {
	s := scene.New()
	mo := scene.NewMeshObject(nil, mesh.NewCube(mesh.Vec3{}, 1))
	mo.AddEdge("1", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))
	s.Add(mo, scene.Style{})

	var edgeActor *scene.Actor
	for _, a := range s.Actors() {
		if a.IsEdge() {
			edgeActor = a
		}
	}
	p := NewPicker(s)
	p.Toggle(edgeActor)
	if edgeActor.Style.Color != scene.ColorPickedEdge {
		t.Errorf("picked edge color = %q, want %q", edgeActor.Style.Color, scene.ColorPickedEdge)
	}
}

func TestPickRevealsEdges(t *testing.T) {
	s := scene.New()
	mo := scene.NewMeshObject(named{"body"}, mesh.NewCube(mesh.Vec3{}, 1))
	mo.AddEdge("1", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))
	body := s.Add(mo, scene.Style{})

	edge, ok := s.Actor(mo.Edges[0].ActorID)
	if !ok {
		t.Fatal("edge actor not registered")
	}
	if !edge.Hidden {
		t.Fatal("edge actor should start hidden")
	}

	p := NewPicker(s)
	p.Toggle(body)
	if edge.Hidden {
		t.Error("picking the body should reveal its edges")
	}

	p.Toggle(body)
	if !edge.Hidden {
		t.Error("unpicking the body should hide its edges again")
	}
	if edge.Style.Color != scene.ColorEdge {
		t.Errorf("edge color after unpick = %q, want %q", edge.Style.Color, scene.ColorEdge)
	}
}

func TestUnpickRestoresPickedEdge(t *testing.T) {
	s := scene.New()
	mo := scene.NewMeshObject(named{"body"}, mesh.NewCube(mesh.Vec3{}, 1))
	mo.AddEdge("1", mesh.NewLine(mesh.Vec3{}, mesh.Vec3{X: 1}))
	body := s.Add(mo, scene.Style{})
	edge, _ := s.Actor(mo.Edges[0].ActorID)

	p := NewPicker(s)
	p.Toggle(body)
	p.Toggle(edge)
	if edge.Style.Color != scene.ColorPickedEdge {
		t.Fatalf("picked edge color = %q", edge.Style.Color)
	}

	// Unpicking the body hides the edge and undoes its pick.
	p.Toggle(body)
	if !edge.Hidden {
		t.Error("edge should be hidden once the body is unpicked")
	}
	if p.IsPicked(edge.Name) {
		t.Error("edge should be unpicked with its body")
	}
	if edge.Style.Color != scene.ColorEdge {
		t.Errorf("edge color = %q, want %q restored", edge.Style.Color, scene.ColorEdge)
	}
}

func TestHitTestIgnoresEdges(t *testing.T) {
	s := scene.New()
	mo := scene.NewMeshObject(named{"body"}, mesh.NewCube(mesh.Vec3{Z: -3}, 1))
	// Edge geometry with surface area, sitting between camera and body.
	mo.AddEdge("1", mesh.NewCube(mesh.Vec3{}, 1))
	body := s.Add(mo, scene.Style{})

	p := NewPicker(s)
	p.Toggle(body) // edges now visible

	hit, ok := HitTest(s, Ray{Origin: mesh.Vec3{Z: 10}, Dir: mesh.Vec3{Z: -1}})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Actor != body {
		t.Errorf("hit %q, want the body behind its edge", hit.Actor.Name)
	}
}

func TestPickerOrderAndObjects(t *testing.T) {
	s := scene.New()
	a := s.Add(scene.NewMeshObject(named{"alpha"}, mesh.NewCube(mesh.Vec3{}, 1)), scene.Style{})
	b := s.Add(scene.NewMeshObject(named{"beta"}, mesh.NewCube(mesh.Vec3{X: 3}, 1)), scene.Style{})

	p := NewPicker(s)
	p.Toggle(b)
	p.Toggle(a)

	picked := p.Picked()
	if len(picked) != 2 || picked[0].Name != "beta" || picked[1].Name != "alpha" {
		t.Fatalf("pick order = %v", pickedNames(picked))
	}

	objs := p.PickedObjects()
	if len(objs) != 2 || objs[0].(named).name != "beta" {
		t.Errorf("picked objects = %v", objs)
	}

	p.Clear()
	if len(p.Picked()) != 0 {
		t.Error("Clear left picked actors")
	}
	if a.Style.Color != scene.ColorDefault {
		t.Error("Clear did not restore colors")
	}
}

func TestPickAt(t *testing.T) {
	s := pickScene()
	p := NewPicker(s)

	// The scene center projects to the viewport center.
	a, ok := p.PickAt(context.Background(), 200, 200, 100, 100)
	if !ok || a.Name != "near" {
		t.Fatalf("PickAt center = %v, %v", a, ok)
	}
	if !p.IsPicked("near") {
		t.Error("PickAt did not toggle")
	}

	// A corner ray misses everything.
	if _, ok := p.PickAt(context.Background(), 200, 200, 1, 1); ok {
		t.Error("corner pick should miss")
	}

	if h, ok := p.HoverAt(200, 200, 100, 100); !ok || h.Name != "near" {
		t.Errorf("HoverAt = %v, %v", h, ok)
	}
}

type named struct{ name string }

func (n named) Name() string { return n.name }

func pickedNames(actors []*scene.Actor) []string {
	out := make([]string, len(actors))
	for i, a := range actors {
		out[i] = a.Name
	}
	return out
}
