// Package backends defines the pluggable rendering backend contract.
//
// # Overview
//
// A [Backend] receives plotted objects, accumulates them into a scene
// and shows the result. The facade in pkg/plotter delegates every
// operation here, so swapping the viewer backend for the structural
// Graphviz backend (or a consumer's own) changes nothing upstream.
//
// Optional capabilities are discovered by interface assertion:
//
//	if p, ok := backend.(backends.Picker); ok {
//	    picked := p.Picked()
//	}
//
// # Implementations
//
//   - viewer: geometry rendering, interactive terminal viewer,
//     picking, widgets, screenshots
//   - graphviz: node-link diagram of the scene's object hierarchy
package backends

import (
	"context"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer/widgets"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Backend renders plotted objects. Implementations accumulate objects
// across Plot calls and display or export them on Show.
type Backend interface {
	// Plot adds one object to the scene. Supported objects are
	// *mesh.Mesh, *mesh.MultiBlock, *scene.MeshObject and slices of
	// those; unsupported objects are logged and skipped.
	Plot(ctx context.Context, object any, opts ...PlotOption) error

	// PlotIter adds every object in the list.
	PlotIter(ctx context.Context, objects []any, opts ...PlotOption) error

	// Show displays or exports the scene and returns the consumer
	// objects picked during the session, in pick order.
	Show(ctx context.Context, opts ...ShowOption) ([]any, error)

	// Close releases backend resources. The backend is unusable
	// afterwards.
	Close() error
}

// Picker is implemented by backends that support object selection.
type Picker interface {
	// Picked returns the picked consumer objects in pick order.
	Picked() []any

	// ClearPicks unpicks everything.
	ClearPicks()
}

// WidgetHost is implemented by backends that support widgets.
type WidgetHost interface {
	// AddWidget registers a custom widget.
	AddWidget(w widgets.Widget) error
}

// ============================================================================
// Plot options
// ============================================================================

// PlotOptions configures a single Plot call.
type PlotOptions struct {
	// Style overrides the default actor style. Zero means default.
	Style scene.Style

	// NameFilter hides actors whose names do not match this regular
	// expression.
	NameFilter string

	// ClipPlanes are applied to the plotted geometry when rendering.
	ClipPlanes []scene.ClipPlane
}

// PlotOption configures a Plot call.
type PlotOption func(*PlotOptions)

// WithStyle sets the full actor style.
func WithStyle(s scene.Style) PlotOption {
	return func(o *PlotOptions) { o.Style = s }
}

// WithColor sets the actor fill color.
func WithColor(hex string) PlotOption {
	return func(o *PlotOptions) {
		if o.Style == (scene.Style{}) {
			o.Style = scene.DefaultStyle()
		}
		o.Style.Color = hex
	}
}

// WithOpacity sets the actor opacity.
func WithOpacity(opacity float64) PlotOption {
	return func(o *PlotOptions) {
		if o.Style == (scene.Style{}) {
			o.Style = scene.DefaultStyle()
		}
		o.Style.Opacity = opacity
	}
}

// WithNameFilter hides actors not matching the pattern.
func WithNameFilter(pattern string) PlotOption {
	return func(o *PlotOptions) { o.NameFilter = pattern }
}

// WithClipPlane clips the rendered geometry against a plane.
func WithClipPlane(cp scene.ClipPlane) PlotOption {
	return func(o *PlotOptions) { o.ClipPlanes = append(o.ClipPlanes, cp) }
}

// ApplyPlotOptions folds options into a PlotOptions value.
func ApplyPlotOptions(opts []PlotOption) PlotOptions {
	var o PlotOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ============================================================================
// Show options
// ============================================================================

// ShowOptions configures a Show call.
type ShowOptions struct {
	// Screenshot writes a render of the final view to this path.
	Screenshot string

	// View switches to a canonical view before showing.
	View string

	// Width and Height override the configured frame size.
	Width  int
	Height int

	// OffScreen skips the interactive viewer even outside test mode.
	OffScreen bool
}

// ShowOption configures a Show call.
type ShowOption func(*ShowOptions)

// WithScreenshot writes the final view to path on Show.
func WithScreenshot(path string) ShowOption {
	return func(o *ShowOptions) { o.Screenshot = path }
}

// WithView sets the canonical view before showing.
func WithView(name string) ShowOption {
	return func(o *ShowOptions) { o.View = name }
}

// WithSize overrides the frame dimensions.
func WithSize(width, height int) ShowOption {
	return func(o *ShowOptions) { o.Width = width; o.Height = height }
}

// WithOffScreen forces off-screen rendering.
func WithOffScreen() ShowOption {
	return func(o *ShowOptions) { o.OffScreen = true }
}

// ApplyShowOptions folds options into a ShowOptions value.
func ApplyShowOptions(opts []ShowOption) ShowOptions {
	var o ShowOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
