package graphviz

import (
	"context"
	"strings"
	"testing"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

type widget struct{ name string }

func (w widget) Name() string { return w.name }

func buildBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New(Options{Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	mo := scene.NewMeshObject(widget{"bracket"}, mesh.NewCube(mesh.Vec3{}, 1))
	mo.AddEdge("top", mesh.NewCube(mesh.Vec3{Y: 1}, 0.1))
	if err := b.Plot(ctx, mo); err != nil {
		t.Fatal(err)
	}
	if err := b.Plot(ctx, mesh.NewCube(mesh.Vec3{X: 3}, 1)); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestToDOT(t *testing.T) {
	b := buildBackend(t)
	dot := ToDOT(b.Scene(), DOTOptions{Detailed: true})

	for _, want := range []string{
		"digraph scene {",
		`"scene `,
		`"bracket`, // node label
		"bracket-top",
		"mesh-2",
		"triangles: 12",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// The edge actor hangs off its parent object's actor, not the root.
	sc := b.Scene()
	var objID, edgeID string
	for _, a := range sc.Actors() {
		if a.IsEdge() {
			edgeID = a.ID
		} else if a.Object != nil {
			objID = a.ID
		}
	}
	if !strings.Contains(dot, `"`+objID+`" -> "`+edgeID+`"`) {
		t.Errorf("edge actor not linked to parent:\n%s", dot)
	}
}

func TestToDOTHidesHiddenActors(t *testing.T) {
	b := buildBackend(t)
	sc := b.Scene()
	sc.Actors()[0].Hidden = true

	dot := ToDOT(sc, DOTOptions{})
	if strings.Contains(dot, "bracket\"") {
		t.Errorf("hidden actor present:\n%s", dot)
	}

	dot = ToDOT(sc, DOTOptions{ShowHidden: true})
	if !strings.Contains(dot, "dashed") {
		t.Errorf("hidden actor not greyed out:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="8pt" height="6pt" viewBox="0.00 0.00 100.50 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.50 200.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="101"`) && !strings.Contains(out, `width="100"`) {
		t.Errorf("width not pixel-sized: %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox must pass through")
	}
}

func TestShowRejectsBadFormat(t *testing.T) {
	b := buildBackend(t)
	_, err := b.Show(context.Background(), backends.WithScreenshot("out.png"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v", err)
	}
}

func TestClosedBackend(t *testing.T) {
	b := buildBackend(t)
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if err := b.Plot(context.Background(), mesh.NewCube(mesh.Vec3{}, 1)); err == nil {
		t.Error("Plot after Close should fail")
	}
	if _, err := b.Show(context.Background()); err == nil {
		t.Error("Show after Close should fail")
	}
}

func TestShowWritesDOT(t *testing.T) {
	b := buildBackend(t)
	path := t.TempDir() + "/scene.dot"
	picked, err := b.Show(context.Background(), backends.WithScreenshot(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(picked) != 0 {
		t.Errorf("structural backend picked %v", picked)
	}
}
