// Package sink provides output format renderers for projected frames.
//
// # Overview
//
// A "sink" transforms a projected [render.Frame] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics with optional hover interactivity
//   - PNG: Raster image output
//   - GIF: Animated output for frame sequences
//
// # SVG Output
//
// [RenderSVG] produces SVG with one element per projected primitive,
// painted far to near. Actors keep their IDs as element classes so
// host pages can address them.
//
//	svg := sink.RenderSVG(frame,
//	    sink.WithTitle("front view"),
//	    sink.WithInteraction(),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes the frame in-process. No external tools are
// required.
//
//	png, err := sink.RenderPNG(frame, sink.WithScale(2))
//
// # GIF Output
//
// [RenderGIF] projects every frame of a sequence and encodes the
// result as an animated GIF:
//
//	gif, err := sink.RenderGIF(ctx, seq, opts, 10)
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(f *render.Frame, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Paint f.Polygons and f.Segments in slice order (already depth sorted)
//  4. Register in internal/cli/render.go for CLI support
//
// [render.Frame]: github.com/ansys/ansys-tools-visualization-interface/pkg/render.Frame
package sink
