package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
)

// Show displays the scene. In test mode, doc mode or with the
// off-screen option it renders to the screenshot path (if any) and
// returns immediately; otherwise it runs the interactive terminal
// viewer until the user quits. Either way the picked consumer objects
// come back in pick order.
func (v *Viewer) Show(ctx context.Context, opts ...backends.ShowOption) ([]any, error) {
	if v.closed {
		return nil, errors.New(errors.ErrCodeInvalidInput, "viewer is closed")
	}
	o := backends.ApplyShowOptions(opts)

	if o.View != "" {
		if err := v.SetView(o.View); err != nil {
			return nil, err
		}
	}

	width, height := v.opts.Width, v.opts.Height
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}

	offScreen := o.OffScreen || v.opts.Config.OffScreen()
	if !offScreen {
		if err := v.runInteractive(ctx); err != nil {
			return nil, err
		}
	}

	if o.Screenshot != "" {
		if err := v.renderToFile(ctx, o.Screenshot, width, height); err != nil {
			return nil, err
		}
	} else if offScreen {
		// Off-screen with no target still exercises the full pipeline,
		// mirroring interactive behavior for tests.
		if _, err := v.renderFrame(ctx, width, height); err != nil {
			return nil, err
		}
	}

	return v.picker.PickedObjects(), nil
}

func (v *Viewer) runInteractive(ctx context.Context) error {
	m := newModel(v)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "interactive viewer failed")
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
