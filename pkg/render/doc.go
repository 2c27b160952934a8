// Package render projects 3D scenes into 2D frames for output sinks.
//
// # Overview
//
// This package contains the rendering pipeline that transforms scenes
// into visual outputs. It provides:
//
//   - [Project]: camera projection of a scene into a [Frame] display list
//   - Animation playback state and frame sequences (in this package)
//   - Output sinks (in the [sink] subpackage)
//
// # Pipeline
//
// A [Frame] is a sorted 2D display list: shaded polygons, line segments
// and labels in screen coordinates, ordered far to near so sinks can
// paint them directly.
//
//	frame, err := render.Project(ctx, sc, render.Options{Width: 800, Height: 600})
//	svg := sink.RenderSVG(frame)
//	png, err := sink.RenderPNG(frame)
//
// Projection honors the scene camera: perspective or parallel
// projection, canonical views and fitted distances all come from
// [scene.Camera]. Clip planes passed in [Options] are applied to every
// actor before projection.
//
// # Animation
//
// [FrameSequence] abstracts a time-ordered series of scenes;
// [Animation] adds play/pause/stop/seek state on top. The GIF sink
// encodes a whole sequence into an animated image.
//
// [sink]: github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink
// [scene.Camera]: github.com/ansys/ansys-tools-visualization-interface/pkg/scene.Camera
package render
