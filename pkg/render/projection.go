package render

import (
	"context"
	"math"
	"time"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/observability"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// nearClip is the minimum camera-space depth for perspective
// projection. Geometry closer than this is dropped.
const nearClip = 1e-6

// edgeDepthBias pulls surface edges slightly toward the camera so they
// paint on top of their own face.
const edgeDepthBias = 1e-4

// maxShade is the strongest darkening applied by flat shading.
const maxShade = 0.55

// projector caches the camera basis and screen mapping for one frame.
type projector struct {
	origin  mesh.Vec3
	forward mesh.Vec3
	right   mesh.Vec3
	up      mesh.Vec3

	parallel bool
	focal    float64 // pixels per unit at distance 1 (perspective)
	scale    float64 // pixels per unit (parallel)
	cx, cy   float64
}

func newProjector(cam scene.Camera, width, height int) projector {
	forward := cam.Direction()
	if forward.IsZero() {
		forward = mesh.Vec3{Z: -1}
	}
	right := forward.Cross(cam.Up).Normalize()
	if right.IsZero() {
		// Up is parallel to the view direction; pick any perpendicular.
		right = forward.Cross(mesh.Vec3{Y: 1}).Normalize()
		if right.IsZero() {
			right = forward.Cross(mesh.Vec3{Z: 1}).Normalize()
		}
	}
	up := right.Cross(forward)

	p := projector{
		origin:   cam.Position,
		forward:  forward,
		right:    right,
		up:       up,
		parallel: cam.Parallel,
		cx:       float64(width) / 2,
		cy:       float64(height) / 2,
	}
	if cam.Parallel {
		ps := cam.ParallelScale
		if ps <= 0 {
			ps = 1
		}
		p.scale = float64(height) / 2 / ps
	} else {
		fov := cam.FOV
		if fov <= 0 || fov >= 180 {
			fov = 30
		}
		p.focal = float64(height) / 2 / math.Tan(fov*math.Pi/360)
	}
	return p
}

// project maps a world point to screen coordinates plus camera depth.
// ok is false when the point is behind the near plane.
func (p projector) project(v mesh.Vec3) (pt Point2, depth float64, ok bool) {
	rel := v.Sub(p.origin)
	z := rel.Dot(p.forward)
	x := rel.Dot(p.right)
	y := rel.Dot(p.up)

	if p.parallel {
		return Point2{X: p.cx + x*p.scale, Y: p.cy - y*p.scale}, z, true
	}
	if z <= nearClip {
		return Point2{}, z, false
	}
	s := p.focal / z
	return Point2{X: p.cx + x*s, Y: p.cy - y*s}, z, true
}

// Project renders the scene's visible actors into a depth-sorted 2D
// frame using the scene camera.
func Project(ctx context.Context, sc *scene.Scene, opts Options) (*Frame, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnProjectStart(ctx, sc.ID, len(sc.Visible()))

	frame := &Frame{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.Background,
	}
	proj := newProjector(sc.Camera, opts.Width, opts.Height)

	if opts.GroundPlane {
		projectGroundPlane(frame, proj, sc, opts)
	}

	for _, a := range sc.Visible() {
		m := a.Mesh()
		if m == nil || m.IsEmpty() {
			continue
		}
		for _, cp := range opts.ClipPlanes {
			m = mesh.Clip(m, cp.Plane())
		}
		projectActor(frame, proj, a, m, opts)
	}

	for _, l := range opts.Labels {
		pt, _, ok := proj.project(l.At)
		if !ok {
			continue
		}
		color := l.Color
		if color == "" {
			color = scene.ColorEdge
		}
		frame.Labels = append(frame.Labels, Label{Pos: pt, Text: l.Text, Color: color})
	}

	frame.SortByDepth()
	observability.Render().OnProjectComplete(ctx, sc.ID, len(frame.Polygons)+len(frame.Segments), time.Since(start), nil)
	return frame, nil
}

// groundColor fills the reference ground plane.
const groundColor = "#E8E8E8"

// projectGroundPlane adds a reference plane under the scene, sized to
// overhang the bounds. Clip planes do not apply to it.
func projectGroundPlane(frame *Frame, proj projector, sc *scene.Scene, opts Options) {
	b := sc.Bounds()
	if b.IsEmpty() {
		return
	}
	diag := b.Diagonal()
	center := b.Center()
	plane := mesh.NewPlane(1.5*diag, 1.5*diag, 1).
		Translate(mesh.Vec3{X: center.X, Y: center.Y, Z: b.Min.Z - 0.02*diag})
	ground := &scene.Actor{Name: "ground", Style: scene.Style{Color: groundColor, Opacity: 1}}
	projectActor(frame, proj, ground, plane, opts)
}

func projectActor(frame *Frame, proj projector, a *scene.Actor, m *mesh.Mesh, opts Options) {
	st := a.Style
	lineWidth := st.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	for ti, tri := range m.Triangles {
		var pts [3]Point2
		var depth float64
		visible := true
		for i, idx := range tri {
			pt, z, ok := proj.project(m.Points[idx])
			if !ok {
				visible = false
				break
			}
			pts[i] = pt
			depth += z / 3
		}
		if !visible {
			continue
		}

		if !opts.Wireframe {
			fill := st.Color
			if !opts.NoShading {
				n := m.TriangleNormal(ti)
				// Headlight shading: faces turned away from the
				// camera darken toward maxShade.
				facing := math.Abs(n.Dot(proj.forward))
				fill = scene.Shade(fill, maxShade*(1-facing))
			}
			frame.Polygons = append(frame.Polygons, Polygon{
				Points:  pts,
				Depth:   depth,
				Fill:    fill,
				Opacity: st.Opacity,
				ActorID: a.ID,
				Name:    a.Name,
			})
		}

		if opts.Wireframe || st.ShowEdges {
			edgeColor := scene.ColorEdge
			for i := range 3 {
				frame.Segments = append(frame.Segments, Segment{
					From:    pts[i],
					To:      pts[(i+1)%3],
					Depth:   depth - edgeDepthBias,
					Color:   edgeColor,
					Width:   lineWidth,
					ActorID: a.ID,
				})
			}
		}
	}

	for _, ln := range m.Lines {
		p0, z0, ok0 := proj.project(m.Points[ln[0]])
		p1, z1, ok1 := proj.project(m.Points[ln[1]])
		if !ok0 || !ok1 {
			continue
		}
		frame.Segments = append(frame.Segments, Segment{
			From:    p0,
			To:      p1,
			Depth:   (z0 + z1) / 2,
			Color:   st.Color,
			Width:   lineWidth,
			ActorID: a.ID,
		})
	}
}
