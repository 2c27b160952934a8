package sink

import (
	"bytes"
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	xdraw "golang.org/x/image/draw"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
)

// GIFOption configures GIF rendering.
type GIFOption func(*gifRenderer)

type gifRenderer struct {
	scale     float64
	loopCount int
}

// WithGIFScale scales frames before encoding. Values below 1 shrink
// the output, which keeps turntable GIFs small.
func WithGIFScale(s float64) GIFOption {
	return func(r *gifRenderer) { r.scale = s }
}

// WithLoopCount sets how many times the animation repeats; 0 loops
// forever.
func WithLoopCount(n int) GIFOption {
	return func(r *gifRenderer) { r.loopCount = n }
}

// RenderGIF projects every frame of the sequence and encodes the
// result as an animated GIF at the given frame rate.
func RenderGIF(ctx context.Context, seq render.FrameSequence, opts render.Options, fps float64, gifOpts ...GIFOption) ([]byte, error) {
	r := gifRenderer{scale: 1.0}
	for _, opt := range gifOpts {
		opt(&r)
	}
	if seq == nil || seq.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "GIF needs at least one frame")
	}
	if fps <= 0 {
		fps = render.DefaultFPS
	}
	delay := int(100 / fps) // centiseconds per frame
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{LoopCount: r.loopCount}
	for i := 0; i < seq.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "GIF encoding canceled at frame %d", i)
		}
		sc, err := seq.Scene(i)
		if err != nil {
			return nil, err
		}
		frame, err := render.Project(ctx, sc, opts)
		if err != nil {
			return nil, err
		}
		img, err := Rasterize(frame, 1.0)
		if err != nil {
			return nil, err
		}
		if r.scale != 1.0 {
			img = scaleImage(img, r.scale)
		}

		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "GIF encoding failed")
	}
	return buf.Bytes(), nil
}

// scaleImage resizes with bilinear filtering.
func scaleImage(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
