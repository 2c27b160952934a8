// Package viewer is the principal rendering backend: off-screen
// SVG/PNG/GIF output plus an interactive terminal viewer with picking
// and widgets.
package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer/widgets"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/config"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/observability"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/picking"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Options configures the viewer backend.
type Options struct {
	// Config carries mode switches and default render settings.
	Config config.Config

	// Logger receives warnings about skipped objects. Defaults to a
	// discard logger.
	Logger *log.Logger

	// ScreenshotPath is the default target of the screenshot widget.
	ScreenshotPath string

	// Width, Height and Background override the config's render
	// settings when non-zero.
	Width      int
	Height     int
	Background string

	// GroundPlane draws a reference plane under the scene.
	GroundPlane bool
}

// ValidateAndSetDefaults checks option values and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Width == 0 {
		o.Width = o.Config.Width
	}
	if o.Height == 0 {
		o.Height = o.Config.Height
	}
	if o.Width <= 0 {
		o.Width = render.DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = render.DefaultHeight
	}
	if o.Background == "" {
		o.Background = o.Config.Background
	}
	if o.Background == "" {
		o.Background = render.DefaultBackground
	}
	return errors.ValidateHexColor(o.Background)
}

// Viewer accumulates plotted objects into a scene and shows them
// interactively or off-screen. It implements backends.Backend,
// backends.Picker, backends.WidgetHost and widgets.Host.
type Viewer struct {
	opts   Options
	sc     *scene.Scene
	picker *picking.Picker

	set    *widgets.Set
	slider *widgets.MeshSlider

	clipFraction  float64 // slicing plane position; <0 disables
	clipPlanes    []scene.ClipPlane
	toolbarHidden bool
	status        string
	fitted        bool
	closed        bool
}

// New creates a viewer backend with the default widget set.
func New(opts Options) (*Viewer, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	set, slider, err := widgets.DefaultSet(opts.ScreenshotPath)
	if err != nil {
		return nil, err
	}
	sc := scene.New()
	return &Viewer{
		opts:         opts,
		sc:           sc,
		picker:       picking.NewPicker(sc),
		set:          set,
		slider:       slider,
		clipFraction: -1,
	}, nil
}

// Scene returns the accumulated scene.
func (v *Viewer) Scene() *scene.Scene { return v.sc }

// ============================================================================
// backends.Backend
// ============================================================================

// Plot adds an object to the scene. Unsupported types are logged and
// skipped, never an error.
func (v *Viewer) Plot(ctx context.Context, object any, opts ...backends.PlotOption) error {
	if v.closed {
		return errors.New(errors.ErrCodeInvalidInput, "viewer is closed")
	}
	o := backends.ApplyPlotOptions(opts)
	if o.Style != (scene.Style{}) {
		if err := o.Style.Validate(); err != nil {
			return err
		}
	}

	v.add(object, o.Style)
	v.clipPlanes = append(v.clipPlanes, o.ClipPlanes...)
	v.fitted = false

	if o.NameFilter != "" {
		if err := v.sc.FilterName(o.NameFilter); err != nil {
			return err
		}
	}
	return nil
}

// PlotIter adds every object in the list.
func (v *Viewer) PlotIter(ctx context.Context, objects []any, opts ...backends.PlotOption) error {
	for _, obj := range objects {
		if err := v.Plot(ctx, obj, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (v *Viewer) add(object any, st scene.Style) {
	switch obj := object.(type) {
	case nil:
		v.opts.Logger.Warn("skipping nil object")
	case *scene.MeshObject:
		v.sc.Add(obj, st)
	case *mesh.Mesh:
		v.sc.AddMesh(v.autoName(), obj, st)
	case *mesh.MultiBlock:
		v.addMultiBlock(obj, st)
	case []*scene.MeshObject:
		for _, mo := range obj {
			v.add(mo, st)
		}
	case []*mesh.Mesh:
		for _, m := range obj {
			v.add(m, st)
		}
	case []any:
		for _, item := range obj {
			v.add(item, st)
		}
	default:
		v.opts.Logger.Warn("skipping object of unsupported type", "type", fmt.Sprintf("%T", object))
	}
}

// addMultiBlock registers each block as its own actor. Blocks plotted
// without an explicit style get distinct palette colors so parts stay
// distinguishable.
func (v *Viewer) addMultiBlock(mb *mesh.MultiBlock, st scene.Style) {
	palette := scene.Palette(mb.Len())
	for i := 0; i < mb.Len(); i++ {
		m, name := mb.Block(i)
		if name == "" {
			name = v.autoName()
		}
		bst := st
		if st == (scene.Style{}) && mb.Len() > 1 {
			bst = scene.DefaultStyle()
			bst.Color = palette[i]
		}
		v.sc.AddMesh(name, m, bst)
	}
}

func (v *Viewer) autoName() string {
	return fmt.Sprintf("mesh-%d", v.sc.Len())
}

// Close releases the viewer. Further Plot and Show calls fail.
func (v *Viewer) Close() error {
	v.closed = true
	return nil
}

// ============================================================================
// backends.Picker / backends.WidgetHost
// ============================================================================

// Picked returns the picked consumer objects in pick order.
func (v *Viewer) Picked() []any { return v.picker.PickedObjects() }

// ClearPicks unpicks everything.
func (v *Viewer) ClearPicks() { v.picker.Clear() }

// AddWidget registers a custom widget.
func (v *Viewer) AddWidget(w widgets.Widget) error { return v.set.Add(w) }

// ============================================================================
// widgets.Host
// ============================================================================

// Camera returns the live camera.
func (v *Viewer) Camera() *scene.Camera { return &v.sc.Camera }

// Picker returns the pick state.
func (v *Viewer) Picker() *picking.Picker { return v.picker }

// SetView switches to a canonical view.
func (v *Viewer) SetView(name string) error { return v.sc.Camera.SetView(name) }

// SetParallel switches the projection mode.
func (v *Viewer) SetParallel(parallel bool) { v.sc.Camera.Parallel = parallel }

// SetClipFraction positions the slicing plane across the scene bounds
// along X. Negative disables slicing.
func (v *Viewer) SetClipFraction(f float64) { v.clipFraction = f }

// SetToolbarHidden hides the widget toolbar in the terminal viewer.
func (v *Viewer) SetToolbarHidden(hidden bool) { v.toolbarHidden = hidden }

// SetStatus shows a message in the status bar.
func (v *Viewer) SetStatus(msg string) { v.status = msg }

// Screenshot renders the current view to a file; the format follows
// the extension (.svg or .png).
func (v *Viewer) Screenshot(path string) error {
	return v.renderToFile(context.Background(), path, v.opts.Width, v.opts.Height)
}

// ============================================================================
// Rendering
// ============================================================================

// activeClipPlanes combines plot-time clip planes with the slider's
// slicing plane.
func (v *Viewer) activeClipPlanes() []scene.ClipPlane {
	planes := append([]scene.ClipPlane(nil), v.clipPlanes...)
	if v.clipFraction >= 0 {
		b := v.sc.Bounds()
		if !b.IsEmpty() {
			x := b.Min.X + v.clipFraction*(b.Max.X-b.Min.X)
			planes = append(planes, scene.ClipPlane{
				Normal: mesh.Vec3{X: 1},
				Origin: mesh.Vec3{X: x},
			})
		}
	}
	return planes
}

func (v *Viewer) fitOnce() {
	if v.fitted {
		return
	}
	b := v.sc.Bounds()
	if !b.IsEmpty() {
		v.sc.Camera.Fit(b)
	}
	v.fitted = true
}

func (v *Viewer) renderFrame(ctx context.Context, width, height int) (*render.Frame, error) {
	v.fitOnce()
	return render.Project(ctx, v.sc, render.Options{
		Width:       width,
		Height:      height,
		Background:  v.opts.Background,
		ClipPlanes:  v.activeClipPlanes(),
		GroundPlane: v.opts.GroundPlane,
		Labels:      v.pickLabels(),
	})
}

// pickLabels annotates picked bodies with their names, anchored at the
// dataset center.
func (v *Viewer) pickLabels() []render.WorldLabel {
	var labels []render.WorldLabel
	for _, a := range v.picker.Picked() {
		if a.IsEdge() {
			continue
		}
		m := a.Mesh()
		if m == nil || m.IsEmpty() {
			continue
		}
		labels = append(labels, render.WorldLabel{
			Text:  a.Name,
			At:    m.Bounds().Center(),
			Color: scene.ColorPicked,
		})
	}
	return labels
}

func (v *Viewer) renderToFile(ctx context.Context, path string, width, height int) error {
	frame, err := v.renderFrame(ctx, width, height)
	if err != nil {
		return err
	}

	format := strings.ToLower(filepath.Ext(path))
	if format == "" {
		format = ".png"
	}
	start := time.Now()
	observability.Render().OnRenderStart(ctx, format)

	var data []byte
	switch format {
	case ".svg":
		data = sink.RenderSVG(frame, sink.WithTitle(v.sc.ID))
	case ".png":
		data, err = sink.RenderPNG(frame)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unsupported screenshot format %q (want .svg or .png)", format)
	}
	observability.Render().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", path)
	}
	v.opts.Logger.Info("wrote render", "path", path, "bytes", len(data))
	return nil
}
