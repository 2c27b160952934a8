package scene

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// ============================================================================
// Styles
// ============================================================================

// Style controls how an actor is rendered.
type Style struct {
	// Color is the fill color as a hex string.
	Color string `json:"color"`

	// Opacity in [0, 1]; 0 is invisible, 1 is opaque.
	Opacity float64 `json:"opacity"`

	// ShowEdges draws cell edges on top of the surface.
	ShowEdges bool `json:"show_edges,omitempty"`

	// LineWidth is the stroke width for line cells and edges.
	LineWidth float64 `json:"line_width,omitempty"`
}

// DefaultStyle returns the style used for actors added without one.
func DefaultStyle() Style {
	return Style{Color: ColorDefault, Opacity: 1, LineWidth: 1}
}

// EdgeStyle returns the style used for edge actors.
func EdgeStyle() Style {
	return Style{Color: ColorEdge, Opacity: 1, LineWidth: 2}
}

// Validate checks style fields for renderable values.
func (s Style) Validate() error {
	if err := errors.ValidateHexColor(s.Color); err != nil {
		return err
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return errors.New(errors.ErrCodeInvalidOption, "opacity must be in [0, 1], got %g", s.Opacity)
	}
	if s.LineWidth < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "line width cannot be negative")
	}
	return nil
}

// ============================================================================
// Actors
// ============================================================================

// Actor is one renderable entry in a scene: resolved geometry plus
// style, identity and an optional link back to the consumer object.
type Actor struct {
	// ID uniquely identifies the actor within its scene.
	ID string

	// Name is the display name shown in pickers and labels.
	Name string

	// Object links back to the consumer object, when the actor was
	// added through a MeshObject. Nil for plain meshes and edges.
	Object *MeshObject

	// Edge links back to the object edge, for edge actors.
	Edge *Edge

	// Style controls rendering of this actor.
	Style Style

	// Hidden actors stay registered but are skipped when rendering.
	Hidden bool

	dataset mesh.Dataset
}

// Dataset returns the actor's geometry.
func (a *Actor) Dataset() mesh.Dataset {
	return a.dataset
}

// Mesh flattens the actor's geometry to a single mesh.
func (a *Actor) Mesh() *mesh.Mesh {
	if a.dataset == nil {
		return nil
	}
	return mesh.AsMesh(a.dataset)
}

// IsEdge reports whether the actor renders edge geometry.
func (a *Actor) IsEdge() bool {
	return a.Edge != nil
}

// ============================================================================
// Scene
// ============================================================================

// Scene is the ordered actor registry backends render from. Actors keep
// insertion order so painter-style backends produce stable output.
//
// Scene is not safe for concurrent mutation; callers that share a scene
// across goroutines must synchronize externally.
type Scene struct {
	// ID identifies the scene, e.g. in the scene service.
	ID string

	// Camera is the shared view state.
	Camera Camera

	actors []*Actor
	byID   map[string]*Actor
}

// New creates an empty scene with a fresh ID and default camera.
func New() *Scene {
	return &Scene{
		ID:     uuid.NewString(),
		Camera: DefaultCamera(),
		byID:   make(map[string]*Actor),
	}
}

// AddMesh registers plain geometry under a display name and returns the
// new actor. A zero Style gets the default style.
func (s *Scene) AddMesh(name string, ds mesh.Dataset, st Style) *Actor {
	if st == (Style{}) {
		st = DefaultStyle()
	}
	a := &Actor{
		ID:      uuid.NewString(),
		Name:    name,
		Style:   st,
		dataset: ds,
	}
	s.register(a)
	return a
}

// Add registers a mesh object and its edges. The body actor takes the
// given style; edges take the edge style. The object and its edges are
// bound to their actor IDs. Edge actors start hidden: pickers reveal
// them while their parent body is selected.
func (s *Scene) Add(mo *MeshObject, st Style) *Actor {
	if st == (Style{}) {
		st = DefaultStyle()
	}
	a := &Actor{
		ID:      uuid.NewString(),
		Name:    mo.Name(),
		Object:  mo,
		Style:   st,
		dataset: mo.Dataset(),
	}
	mo.ActorID = a.ID
	s.register(a)

	for _, e := range mo.Edges {
		ea := &Actor{
			ID:      uuid.NewString(),
			Name:    e.Name(),
			Object:  mo,
			Edge:    e,
			Style:   EdgeStyle(),
			Hidden:  true,
			dataset: e.Geometry(),
		}
		e.ActorID = ea.ID
		s.register(ea)
	}
	return a
}

func (s *Scene) register(a *Actor) {
	if s.byID == nil {
		s.byID = make(map[string]*Actor)
	}
	s.actors = append(s.actors, a)
	s.byID[a.ID] = a
}

// Remove deletes an actor by ID. Removing an unknown ID is an error.
func (s *Scene) Remove(id string) error {
	if _, ok := s.byID[id]; !ok {
		return errors.New(errors.ErrCodeObjectNotFound, "no actor with ID %s", id)
	}
	delete(s.byID, id)
	for i, a := range s.actors {
		if a.ID == id {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			break
		}
	}
	return nil
}

// Actor looks up an actor by ID.
func (s *Scene) Actor(id string) (*Actor, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Actors returns all actors in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Scene) Actors() []*Actor {
	return s.actors
}

// Visible returns the actors that are not hidden, in insertion order.
func (s *Scene) Visible() []*Actor {
	out := make([]*Actor, 0, len(s.actors))
	for _, a := range s.actors {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of registered actors.
func (s *Scene) Len() int {
	return len(s.actors)
}

// FilterName hides every actor whose name does not match the pattern.
// An empty pattern unhides everything. Edge actors are left alone:
// their visibility belongs to the picker.
func (s *Scene) FilterName(pattern string) error {
	if pattern == "" {
		for _, a := range s.actors {
			if a.IsEdge() {
				continue
			}
			a.Hidden = false
		}
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOption, err, "invalid name filter %q", pattern)
	}
	for _, a := range s.actors {
		if a.IsEdge() {
			continue
		}
		a.Hidden = !re.MatchString(a.Name)
	}
	return nil
}

// Bounds returns the union of all visible actor bounds.
func (s *Scene) Bounds() mesh.Bounds {
	var b mesh.Bounds
	first := true
	for _, a := range s.Visible() {
		if a.dataset == nil {
			continue
		}
		ab := a.dataset.Bounds()
		if ab.IsEmpty() {
			continue
		}
		if first {
			b = ab
			first = false
		} else {
			b = b.Union(ab)
		}
	}
	return b
}

// Combine merges every visible actor's geometry into one multi-block,
// named by actor. Used by slicing widgets that clip the whole scene at
// once.
func (s *Scene) Combine() *mesh.MultiBlock {
	mb := mesh.NewMultiBlock()
	for _, a := range s.Visible() {
		m := a.Mesh()
		if m == nil || m.IsEmpty() {
			continue
		}
		mb.Append(a.Name, m)
	}
	return mb
}

// Clear removes all actors.
func (s *Scene) Clear() {
	s.actors = nil
	s.byID = make(map[string]*Actor)
}
