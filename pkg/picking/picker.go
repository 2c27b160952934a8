package picking

import (
	"context"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/observability"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Picker tracks the picked actors of one scene. Picking recolors the
// actor and reveals its edge actors; unpicking restores the color it
// had when first picked and hides the edges again.
type Picker struct {
	scene    *scene.Scene
	picked   map[string]*scene.Actor // by actor name
	order    []string                // pick order of names
	original map[string]string       // actor ID -> color before picking
}

// NewPicker creates a picker for the scene.
func NewPicker(sc *scene.Scene) *Picker {
	return &Picker{
		scene:    sc,
		picked:   make(map[string]*scene.Actor),
		original: make(map[string]string),
	}
}

// Toggle flips the picked state of an actor and returns the new state.
func (p *Picker) Toggle(a *scene.Actor) bool {
	if _, ok := p.picked[a.Name]; ok {
		p.unpick(a)
		return false
	}
	p.pick(a)
	return true
}

func (p *Picker) pick(a *scene.Actor) {
	p.original[a.ID] = a.Style.Color
	if a.IsEdge() {
		a.Style.Color = scene.ColorPickedEdge
	} else {
		a.Style.Color = scene.ColorPicked
		p.setEdgeVisibility(a, true)
	}
	p.picked[a.Name] = a
	p.order = append(p.order, a.Name)
}

func (p *Picker) unpick(a *scene.Actor) {
	if orig, ok := p.original[a.ID]; ok {
		a.Style.Color = orig
		delete(p.original, a.ID)
	}
	if !a.IsEdge() {
		p.setEdgeVisibility(a, false)
	}
	delete(p.picked, a.Name)
	for i, n := range p.order {
		if n == a.Name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// setEdgeVisibility reveals or hides the edge actors of a body. An
// edge that was picked directly is unpicked before it goes back into
// hiding, so its color is restored alongside.
func (p *Picker) setEdgeVisibility(a *scene.Actor, visible bool) {
	if a.Object == nil {
		return
	}
	for _, e := range a.Object.Edges {
		ea, ok := p.scene.Actor(e.ActorID)
		if !ok {
			continue
		}
		if !visible {
			if _, picked := p.picked[ea.Name]; picked {
				p.unpick(ea)
			}
		}
		ea.Hidden = !visible
	}
}

// PickAt casts a ray through the given pixel and toggles the nearest
// actor. Returns the hit actor, if any.
func (p *Picker) PickAt(ctx context.Context, width, height int, sx, sy float64) (*scene.Actor, bool) {
	ray := RayFromScreen(p.scene.Camera, width, height, sx, sy)
	hit, ok := HitTest(p.scene, ray)
	if !ok {
		observability.Render().OnPick(ctx, p.scene.ID, "", false)
		return nil, false
	}
	p.Toggle(hit.Actor)
	observability.Render().OnPick(ctx, p.scene.ID, hit.Actor.Name, true)
	return hit.Actor, true
}

// HoverAt returns the actor under the given pixel without changing any
// state. Viewers use it for hover labels.
func (p *Picker) HoverAt(width, height int, sx, sy float64) (*scene.Actor, bool) {
	ray := RayFromScreen(p.scene.Camera, width, height, sx, sy)
	hit, ok := HitTest(p.scene, ray)
	if !ok {
		return nil, false
	}
	return hit.Actor, true
}

// IsPicked reports whether an actor with the given name is picked.
func (p *Picker) IsPicked(name string) bool {
	_, ok := p.picked[name]
	return ok
}

// Picked returns the picked actors in pick order.
func (p *Picker) Picked() []*scene.Actor {
	out := make([]*scene.Actor, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.picked[name])
	}
	return out
}

// PickedObjects returns the consumer objects behind the picked actors,
// in pick order. Actors without a backing object are skipped.
func (p *Picker) PickedObjects() []any {
	var out []any
	for _, a := range p.Picked() {
		if a.Object != nil {
			out = append(out, a.Object.Custom)
		}
	}
	return out
}

// Clear unpicks everything, restoring original colors.
func (p *Picker) Clear() {
	for _, name := range append([]string(nil), p.order...) {
		p.unpick(p.picked[name])
	}
}
