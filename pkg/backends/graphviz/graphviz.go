// Package graphviz is a structural backend: instead of rendering
// geometry it draws the scene's object hierarchy as a node-link
// diagram. Useful for inspecting what a plot contains when the
// geometry itself is too dense to read.
package graphviz

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Options configures the structural backend.
type Options struct {
	// Logger receives warnings about skipped objects. Defaults to a
	// discard logger.
	Logger *log.Logger

	// Detailed includes triangle and point counts in node labels.
	Detailed bool

	// ShowHidden includes hidden actors in the diagram.
	ShowHidden bool
}

// ValidateAndSetDefaults fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Backend accumulates plotted objects and exports their hierarchy as a
// Graphviz diagram. It implements backends.Backend; it has no picking
// or widgets.
type Backend struct {
	opts   Options
	sc     *scene.Scene
	closed bool
}

// New creates a structural backend.
func New(opts Options) (*Backend, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Backend{opts: opts, sc: scene.New()}, nil
}

// Scene returns the accumulated scene.
func (b *Backend) Scene() *scene.Scene { return b.sc }

// Plot adds an object to the hierarchy. Styles are kept for node
// coloring; clip planes have no structural meaning and are ignored.
func (b *Backend) Plot(ctx context.Context, object any, opts ...backends.PlotOption) error {
	if b.closed {
		return errors.New(errors.ErrCodeInvalidInput, "backend is closed")
	}
	o := backends.ApplyPlotOptions(opts)
	if o.Style != (scene.Style{}) {
		if err := o.Style.Validate(); err != nil {
			return err
		}
	}

	b.add(object, o.Style)

	if o.NameFilter != "" {
		if err := b.sc.FilterName(o.NameFilter); err != nil {
			return err
		}
	}
	return nil
}

// PlotIter adds every object in the list.
func (b *Backend) PlotIter(ctx context.Context, objects []any, opts ...backends.PlotOption) error {
	for _, obj := range objects {
		if err := b.Plot(ctx, obj, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) add(object any, st scene.Style) {
	switch obj := object.(type) {
	case nil:
		b.opts.Logger.Warn("skipping nil object")
	case *scene.MeshObject:
		b.sc.Add(obj, st)
	case *mesh.Mesh:
		b.sc.AddMesh(b.autoName(), obj, st)
	case *mesh.MultiBlock:
		b.sc.AddMesh(b.autoName(), obj, st)
	case []*scene.MeshObject:
		for _, mo := range obj {
			b.add(mo, st)
		}
	case []*mesh.Mesh:
		for _, m := range obj {
			b.add(m, st)
		}
	case []any:
		for _, item := range obj {
			b.add(item, st)
		}
	default:
		b.opts.Logger.Warn("skipping object of unsupported type", "type", fmt.Sprintf("%T", object))
	}
}

func (b *Backend) autoName() string {
	return fmt.Sprintf("mesh-%d", b.sc.Len())
}

// Show exports the hierarchy diagram. The screenshot option picks the
// output: .dot writes the DOT source, .svg the rendered diagram. With
// no screenshot the diagram is rendered and discarded, which still
// validates the scene. The structural backend never picks anything, so
// the returned slice is always empty.
func (b *Backend) Show(ctx context.Context, opts ...backends.ShowOption) ([]any, error) {
	if b.closed {
		return nil, errors.New(errors.ErrCodeInvalidInput, "backend is closed")
	}
	o := backends.ApplyShowOptions(opts)

	dot := ToDOT(b.sc, DOTOptions{Detailed: b.opts.Detailed, ShowHidden: b.opts.ShowHidden})

	if o.Screenshot == "" {
		if _, err := RenderSVG(ctx, dot); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(o.Screenshot)) {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg", "":
		svg, err := RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		data = svg
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q (want .dot, .gv or .svg)", filepath.Ext(o.Screenshot))
	}

	if err := os.WriteFile(o.Screenshot, data, 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", o.Screenshot)
	}
	b.opts.Logger.Info("wrote diagram", "path", o.Screenshot, "bytes", len(data))
	return nil, nil
}

// Close releases the backend. Further Plot and Show calls fail.
func (b *Backend) Close() error {
	b.closed = true
	return nil
}
