package render

import (
	"sort"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// Point2 is a screen-space coordinate in pixels, origin top-left.
type Point2 struct {
	X, Y float64
}

// Polygon is one projected, shaded triangle.
type Polygon struct {
	Points  [3]Point2
	Depth   float64 // camera distance, used for painter ordering
	Fill    string  // hex color after shading
	Opacity float64
	ActorID string
	Name    string
}

// Segment is one projected line: a line cell, a surface edge or a
// widget overlay.
type Segment struct {
	From, To Point2
	Depth    float64
	Color    string
	Width    float64
	ActorID  string
}

// Label is screen-space text, e.g. a hover label over a picked actor.
type Label struct {
	Pos   Point2
	Text  string
	Color string
}

// WorldLabel anchors annotation text to a world-space position.
// [Project] turns it into a screen-space [Label] when the anchor is in
// front of the camera. An empty color falls back to the edge color.
type WorldLabel struct {
	Text  string
	At    mesh.Vec3
	Color string
}

// Frame is a 2D display list ready for a sink. Polygons and segments
// are painted far to near after [Frame.SortByDepth].
type Frame struct {
	Width      int
	Height     int
	Background string

	Polygons []Polygon
	Segments []Segment
	Labels   []Label
}

// SortByDepth orders polygons and segments far to near so sinks can
// paint them in slice order.
func (f *Frame) SortByDepth() {
	sort.SliceStable(f.Polygons, func(i, j int) bool {
		return f.Polygons[i].Depth > f.Polygons[j].Depth
	})
	sort.SliceStable(f.Segments, func(i, j int) bool {
		return f.Segments[i].Depth > f.Segments[j].Depth
	})
}
