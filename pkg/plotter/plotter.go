// Package plotter is the user-facing facade. It owns a rendering
// backend and forwards every operation to it, so consumer code never
// depends on a concrete backend.
//
// # Usage
//
//	p, err := plotter.New()
//	if err != nil { ... }
//	defer p.Close()
//
//	p.Plot(ctx, myMesh, backends.WithColor("#D6F7D1"))
//	picked, err := p.Show(ctx)
//
// By default the facade runs the interactive viewer backend; pass
// [WithBackend] to swap in the structural Graphviz backend or a
// custom implementation.
package plotter

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer/widgets"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/config"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
)

// Options configures the facade.
type Options struct {
	// Backend is the rendering backend. Defaults to the viewer.
	Backend backends.Backend

	// Config is used to build the default backend. Ignored when a
	// backend is supplied.
	Config config.Config

	// Logger is passed to the default backend.
	Logger *log.Logger
}

// Option configures a plotter.
type Option func(*Options)

// WithBackend swaps the rendering backend.
func WithBackend(b backends.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithConfig sets the config used to build the default backend.
func WithConfig(cfg config.Config) Option {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger sets the logger of the default backend.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Plotter plots objects through a backend.
type Plotter struct {
	backend backends.Backend
}

// New creates a plotter. Without options it loads the default config
// and runs the interactive viewer backend.
func New(opts ...Option) (*Plotter, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.Backend == nil {
		if o.Config == (config.Config{}) {
			cfg, err := config.Load("")
			if err != nil {
				return nil, err
			}
			o.Config = cfg
		}
		v, err := viewer.New(viewer.Options{Config: o.Config, Logger: o.Logger})
		if err != nil {
			return nil, err
		}
		o.Backend = v
	}

	return &Plotter{backend: o.Backend}, nil
}

// Backend returns the underlying backend.
func (p *Plotter) Backend() backends.Backend { return p.backend }

// Plot adds an object to the scene.
func (p *Plotter) Plot(ctx context.Context, object any, opts ...backends.PlotOption) error {
	return p.backend.Plot(ctx, object, opts...)
}

// PlotIter adds every object in the list.
func (p *Plotter) PlotIter(ctx context.Context, objects []any, opts ...backends.PlotOption) error {
	return p.backend.PlotIter(ctx, objects, opts...)
}

// Show displays or exports the scene and returns the picked consumer
// objects in pick order.
func (p *Plotter) Show(ctx context.Context, opts ...backends.ShowOption) ([]any, error) {
	return p.backend.Show(ctx, opts...)
}

// Close releases the backend.
func (p *Plotter) Close() error {
	return p.backend.Close()
}

// ============================================================================
// Optional capabilities
// ============================================================================

// Picked returns the picked consumer objects, or nil when the backend
// does not support picking.
func (p *Plotter) Picked() []any {
	if picker, ok := p.backend.(backends.Picker); ok {
		return picker.Picked()
	}
	return nil
}

// ClearPicks unpicks everything on backends that support picking.
func (p *Plotter) ClearPicks() {
	if picker, ok := p.backend.(backends.Picker); ok {
		picker.ClearPicks()
	}
}

// AddWidget registers a custom widget. Fails with UNSUPPORTED when the
// backend has no widget support.
func (p *Plotter) AddWidget(w widgets.Widget) error {
	host, ok := p.backend.(backends.WidgetHost)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "backend %T does not support widgets", p.backend)
	}
	return host.AddWidget(w)
}
