// Package pkg provides the core libraries for the visualization interface.
//
// # Overview
//
// The visualization interface plots simulation meshes from any source
// behind one facade. Callers hand meshes (or objects wrapping meshes)
// to a plotter; pluggable backends decide how the scene is drawn. The
// pkg directory is organized into four main areas:
//
//  1. [mesh], [scene] - Domain types (geometry, actors, cameras)
//  2. [plotter], [backends] - The plotting facade and its backends
//  3. [render] - Projection and output sinks (SVG, PNG, GIF)
//  4. [service], [cache], [httputil] - The scene service and its plumbing
//
// # Architecture
//
// The typical data flow:
//
//	Mesh file / custom object
//	         ↓
//	    [scene] package (actors, styles, camera, clip planes)
//	         ↓
//	    [render] package (projection to 2D frames)
//	         ↓
//	    [render/sink] package (SVG, PNG, GIF output)
//
// # Quick Start
//
// Plot a mesh and write an SVG:
//
//	import (
//	    "context"
//	    "github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
//	    "github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
//	    "github.com/ansys/ansys-tools-visualization-interface/pkg/plotter"
//	)
//
//	p, _ := plotter.New()
//	_ = p.Plot(context.Background(), mesh.NewCube(mesh.Vec3{}, 2))
//	_, _ = p.Show(context.Background(),
//	    backends.WithScreenshot("cube.svg"),
//	    backends.WithView("iso"))
//
// # Main Packages
//
// ## Domain Types
//
// [mesh] - Triangle mesh geometry: points, cells, bounds, normals, and
// plane clipping. [mesh.MultiBlock] groups named meshes; the meshio
// subpackage imports and exports OBJ, STL and JSON files.
//
// [scene] - Scenes hold actors (plotted objects with styles), a camera
// with canonical views, and active clip planes. [scene.MeshObject]
// adapts arbitrary caller objects so picking returns the caller's own
// value rather than raw geometry.
//
// ## Plotting
//
// [plotter] - The facade. Accepts meshes, mesh objects, multiblocks
// and iterators, delegates to a backend, and exposes picking and
// widget capabilities when the backend supports them.
//
// [backends] - The backend contract plus shared plot and show options.
//
//   - [backends/viewer]: interactive terminal viewer with off-screen
//     rendering, picking, widgets and screenshots
//   - [backends/graphviz]: structural scene diagrams via Graphviz
//
// ## Rendering
//
// [render] - Projection of scenes into 2D frames: painter-ordered
// polygons, clip-plane slicing, and turntable frame sequences.
//
// [render/sink] - Output sinks: SVG with optional interaction script,
// PNG rasterization, and animated GIF.
//
// [picking] - Ray casting from screen coordinates to actors.
//
// ## Infrastructure
//
// [service] - The scene service: an HTTP API for uploading scenes and
// fetching rendered artifacts, plus the client used by the CLI. Scenes
// persist in memory or MongoDB; artifacts cache in Redis or on disk.
//
// [cache] - Cache contract and implementations (memory, file, Redis)
// with deterministic scene and artifact keys.
//
// [httputil] - Response caching and retry helpers for the service
// client.
//
// [config] - TOML configuration with environment overrides, including
// the test and documentation render modes.
//
// [observability] - Hook points for render, cache and HTTP events.
//
// [errors] - Structured errors with stable codes and validation
// helpers shared across packages.
//
// # Common Workflows
//
// Plot a custom object and read picks back:
//
//	obj := scene.NewMeshObject(part, partMesh)
//	_ = p.Plot(ctx, obj)
//	picked, _ := p.Show(ctx)
//
// Slice a scene with a clip plane:
//
//	v.Scene().AddClipPlane(mesh.Plane{Normal: mesh.Vec3{X: 1}})
//
// Render a turntable GIF:
//
//	seq := render.Turntable(v.Scene(), 36)
//	data, _ := sink.RenderGIF(ctx, seq, opts, render.DefaultFPS)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/render/...       # Specific package
//	go test -run Example           # Examples only
//
// [mesh]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/mesh
// [mesh.MultiBlock]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/mesh#MultiBlock
// [scene]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/scene
// [scene.MeshObject]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/scene#MeshObject
// [plotter]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/plotter
// [backends]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/backends
// [backends/viewer]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer
// [backends/graphviz]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/backends/graphviz
// [render]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink
// [picking]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/picking
// [service]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/service
// [cache]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/httputil
// [config]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/config
// [observability]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/observability
// [errors]: https://pkg.go.dev/github.com/ansys/ansys-tools-visualization-interface/pkg/errors
package pkg
