package widgets

import (
	"fmt"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// DefaultScreenshotPath is where the screenshot button writes when no
// path is configured.
const DefaultScreenshotPath = "screenshot.png"

// NewRuler returns the ruler toggle: a wireframe box around the scene
// bounds with axis lines through its minimum corner.
func NewRuler() Widget {
	var actorID string
	return NewButton("ruler", 'r', func(h Host, active bool) error {
		sc := h.Scene()
		if !active {
			if actorID != "" {
				err := sc.Remove(actorID)
				actorID = ""
				return err
			}
			return nil
		}

		b := sc.Bounds()
		if b.IsEmpty() {
			return errors.New(errors.ErrCodeInvalidInput, "nothing to measure: scene is empty")
		}
		box := mesh.NewBox(b)
		ruler := mesh.New()
		ruler.Merge(box)
		// Axis lines along the box edges from the minimum corner.
		o := ruler.AddPoint(b.Min)
		x := ruler.AddPoint(mesh.Vec3{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z})
		y := ruler.AddPoint(mesh.Vec3{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z})
		z := ruler.AddPoint(mesh.Vec3{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z})
		ruler.AddLine(o, x)
		ruler.AddLine(o, y)
		ruler.AddLine(o, z)

		a := sc.AddMesh("ruler", ruler, scene.Style{
			Color:     scene.ColorEdge,
			Opacity:   0.25,
			ShowEdges: true,
			LineWidth: 1,
		})
		actorID = a.ID

		size := b.Size()
		h.SetStatus(fmt.Sprintf("bounds %.3g x %.3g x %.3g", size.X, size.Y, size.Z))
		return nil
	})
}

// NewMeasure returns the measure action: it reports the distance
// between the centers of the two most recently picked actors.
func NewMeasure() Widget {
	return NewAction("measure", 'm', func(h Host) error {
		picked := h.Picker().Picked()
		if len(picked) < 2 {
			h.SetStatus("measure: pick two objects first")
			return nil
		}
		a := picked[len(picked)-2]
		b := picked[len(picked)-1]
		am, bm := a.Mesh(), b.Mesh()
		if am == nil || bm == nil {
			return errors.New(errors.ErrCodeInvalidMesh, "picked object has no geometry")
		}
		d := am.Center().Distance(bm.Center())
		h.SetStatus(fmt.Sprintf("distance %s to %s: %.6g", a.Name, b.Name, d))
		return nil
	})
}

// NewScreenshot returns the screenshot action. An empty path uses
// [DefaultScreenshotPath].
func NewScreenshot(path string) Widget {
	if path == "" {
		path = DefaultScreenshotPath
	}
	return NewAction("screenshot", 's', func(h Host) error {
		if err := h.Screenshot(path); err != nil {
			return err
		}
		h.SetStatus("screenshot saved to " + path)
		return nil
	})
}

// NewViewButton returns an action that switches to a canonical view.
func NewViewButton(view string, key rune) Widget {
	return NewAction("view "+view, key, func(h Host) error {
		return h.SetView(view)
	})
}

// ViewButtons returns actions for all seven canonical views, bound to
// the number row.
func ViewButtons() []Widget {
	views := scene.ViewNames()
	out := make([]Widget, len(views))
	for i, v := range views {
		out[i] = NewViewButton(v, rune('1'+i))
	}
	return out
}

// NewParallelProjection returns the projection toggle.
func NewParallelProjection() Widget {
	return NewButton("parallel", 'o', func(h Host, active bool) error {
		h.SetParallel(active)
		return nil
	})
}

// MeshSlider slices the whole scene with a moving clip plane. Toggling
// enables slicing at the middle of the bounds; [MeshSlider.Step] moves
// the plane while active.
type MeshSlider struct {
	*Button
	fraction float64
	step     float64
}

// NewMeshSlider creates the slider with the given step size per
// keypress (fraction of the bounds, e.g. 0.05).
func NewMeshSlider(step float64) *MeshSlider {
	if step <= 0 {
		step = 0.05
	}
	s := &MeshSlider{fraction: 0.5, step: step}
	s.Button = NewButton("slice", 'c', func(h Host, active bool) error {
		if active {
			h.SetClipFraction(s.fraction)
			h.SetStatus(fmt.Sprintf("slice at %.0f%%", s.fraction*100))
		} else {
			h.SetClipFraction(-1)
		}
		return nil
	})
	return s
}

// Step moves the slicing plane while the slider is active.
func (s *MeshSlider) Step(h Host, delta int) {
	if !s.Active() {
		return
	}
	s.fraction += float64(delta) * s.step
	if s.fraction < 0 {
		s.fraction = 0
	}
	if s.fraction > 1 {
		s.fraction = 1
	}
	h.SetClipFraction(s.fraction)
	h.SetStatus(fmt.Sprintf("slice at %.0f%%", s.fraction*100))
}

// NewHideButtons returns the toolbar visibility toggle.
func NewHideButtons() Widget {
	return NewButton("hide toolbar", 'h', func(h Host, active bool) error {
		h.SetToolbarHidden(active)
		return nil
	})
}

// DefaultSet returns the standard widget set: ruler, measure,
// screenshot, the seven view buttons, parallel projection, mesh slider
// and the toolbar toggle.
func DefaultSet(screenshotPath string) (*Set, *MeshSlider, error) {
	set := NewSet()
	slider := NewMeshSlider(0.05)

	all := []Widget{
		NewRuler(),
		NewMeasure(),
		NewScreenshot(screenshotPath),
	}
	all = append(all, ViewButtons()...)
	all = append(all, NewParallelProjection(), slider, NewHideButtons())

	for _, w := range all {
		if err := set.Add(w); err != nil {
			return nil, nil, err
		}
	}
	return set, slider, nil
}
