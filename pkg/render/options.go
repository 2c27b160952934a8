package render

import (
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Default frame dimensions, chosen to match the interactive viewer's
// initial window.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#FFFFFF"
)

// Options configures scene projection.
type Options struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// Background is the frame background color as a hex string.
	Background string

	// ClipPlanes are applied to every actor's geometry before
	// projection.
	ClipPlanes []scene.ClipPlane

	// Wireframe skips surface fills and draws triangle edges only.
	Wireframe bool

	// NoShading disables flat shading; every face gets the actor's
	// plain color.
	NoShading bool

	// GroundPlane draws a reference plane just below the scene bounds.
	GroundPlane bool

	// Labels are world-anchored annotations projected into the frame,
	// e.g. the names of picked actors.
	Labels []WorldLabel
}

// ValidateAndSetDefaults checks option values and fills in defaults for
// zero fields.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "frame dimensions must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if err := errors.ValidateHexColor(o.Background); err != nil {
		return err
	}
	for _, cp := range o.ClipPlanes {
		if err := cp.Validate(); err != nil {
			return err
		}
	}
	return nil
}
