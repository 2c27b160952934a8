package sink

import (
	"bytes"
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the raster scale factor (default 1.0; use 2.0 for 2x
// resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes a projected frame to PNG.
func RenderPNG(f *render.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	img, err := Rasterize(f, r.scale)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "PNG encoding failed")
	}
	return buf.Bytes(), nil
}

// Rasterize paints a projected frame into an in-memory image. Shared
// by the PNG and GIF sinks and by the interactive terminal viewer.
func Rasterize(f *render.Frame, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidOption, "scale must be positive, got %g", scale)
	}
	w := int(float64(f.Width) * scale)
	h := int(float64(f.Height) * scale)
	if w < 1 || h < 1 {
		return nil, errors.New(errors.ErrCodeInvalidOption, "frame too small to rasterize: %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)

	dc.SetHexColor(f.Background)
	dc.Clear()

	for _, p := range f.Polygons {
		if p.Opacity <= 0 {
			// Opacity 0 is invisible.
			continue
		}
		c, err := colorful.Hex(p.Fill)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "bad polygon fill %q", p.Fill)
		}
		opacity := p.Opacity
		if opacity > 1 {
			opacity = 1
		}
		dc.SetRGBA(c.R, c.G, c.B, opacity)
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		dc.LineTo(p.Points[1].X, p.Points[1].Y)
		dc.LineTo(p.Points[2].X, p.Points[2].Y)
		dc.ClosePath()
		dc.Fill()
	}

	for _, s := range f.Segments {
		dc.SetHexColor(s.Color)
		dc.SetLineWidth(s.Width)
		dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
		dc.Stroke()
	}

	for _, l := range f.Labels {
		dc.SetHexColor(l.Color)
		dc.DrawString(l.Text, l.Pos.X, l.Pos.Y)
	}

	return dc.Image(), nil
}
