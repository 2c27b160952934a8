// Package widgets provides the viewer's widget extension points.
//
// # Overview
//
// A widget is a small piece of viewer UI bound to a key: rulers, view
// shortcuts, the screenshot button, the mesh slicer. Widgets act on
// the viewer through the [Host] interface, so the same widgets work in
// the interactive terminal viewer and in off-screen hosts.
//
// Consumers register their own widgets through the viewer backend's
// AddWidget, implementing [Widget] directly or building on [Button]
// and [NewAction].
package widgets

import (
	"fmt"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/picking"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Host is the viewer surface widgets act on.
type Host interface {
	// Scene returns the scene being viewed.
	Scene() *scene.Scene

	// Camera returns the live camera.
	Camera() *scene.Camera

	// Picker returns the pick state for the scene.
	Picker() *picking.Picker

	// SetView switches to a canonical view.
	SetView(name string) error

	// SetParallel switches between parallel and perspective projection.
	SetParallel(parallel bool)

	// SetClipFraction positions the slicing plane as a fraction of the
	// scene bounds along X. Negative values disable slicing.
	SetClipFraction(f float64)

	// Screenshot renders the current view to a file.
	Screenshot(path string) error

	// SetToolbarHidden hides or shows the widget toolbar.
	SetToolbarHidden(hidden bool)

	// SetStatus shows a message in the viewer's status area.
	SetStatus(msg string)
}

// Widget is one toggleable piece of viewer UI.
type Widget interface {
	// Name is the toolbar label.
	Name() string

	// Key is the key binding in the terminal viewer.
	Key() rune

	// Active reports the current toggle state.
	Active() bool

	// Toggle flips the widget state and applies its effect.
	Toggle(h Host) error
}

// ============================================================================
// Button
// ============================================================================

// Button is a reusable two-state widget. The callback receives the new
// state; if it fails, the state flip is rolled back.
type Button struct {
	name     string
	key      rune
	active   bool
	callback func(h Host, active bool) error
}

// NewButton creates a toggle button.
func NewButton(name string, key rune, callback func(h Host, active bool) error) *Button {
	return &Button{name: name, key: key, callback: callback}
}

// Name returns the toolbar label.
func (b *Button) Name() string { return b.name }

// Key returns the key binding.
func (b *Button) Key() rune { return b.key }

// Active reports the toggle state.
func (b *Button) Active() bool { return b.active }

// Toggle flips the state and runs the callback.
func (b *Button) Toggle(h Host) error {
	b.active = !b.active
	if b.callback == nil {
		return nil
	}
	if err := b.callback(h, b.active); err != nil {
		b.active = !b.active
		return err
	}
	return nil
}

// action is a momentary widget: it fires on every toggle and never
// stays active.
type action struct {
	name string
	key  rune
	fn   func(h Host) error
}

// NewAction creates a momentary widget that runs fn on every press.
func NewAction(name string, key rune, fn func(h Host) error) Widget {
	return &action{name: name, key: key, fn: fn}
}

func (a *action) Name() string { return a.name }
func (a *action) Key() rune    { return a.key }
func (a *action) Active() bool { return false }
func (a *action) Toggle(h Host) error {
	return a.fn(h)
}

// ============================================================================
// Set
// ============================================================================

// Set is an ordered widget registry with unique key bindings.
type Set struct {
	widgets []Widget
	byKey   map[rune]Widget
}

// NewSet creates an empty widget set.
func NewSet() *Set {
	return &Set{byKey: make(map[rune]Widget)}
}

// Add registers a widget. Key collisions are an error.
func (s *Set) Add(w Widget) error {
	if existing, ok := s.byKey[w.Key()]; ok {
		return errors.New(errors.ErrCodeInvalidOption,
			"widget key %q already bound to %s", w.Key(), existing.Name())
	}
	s.widgets = append(s.widgets, w)
	s.byKey[w.Key()] = w
	return nil
}

// ByKey looks up a widget by its key binding.
func (s *Set) ByKey(key rune) (Widget, bool) {
	w, ok := s.byKey[key]
	return w, ok
}

// All returns the widgets in registration order.
func (s *Set) All() []Widget {
	return s.widgets
}

// Labels returns "key name" toolbar entries in registration order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.widgets))
	for i, w := range s.widgets {
		out[i] = fmt.Sprintf("%c %s", w.Key(), w.Name())
	}
	return out
}
