package scene

import (
	"math"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// Canonical view names. The first axis maps to screen right, the second
// to screen up; the viewer sits along their cross product.
const (
	ViewXY        = "xy"
	ViewYX        = "yx"
	ViewXZ        = "xz"
	ViewZX        = "zx"
	ViewYZ        = "yz"
	ViewZY        = "zy"
	ViewIsometric = "isometric"
)

// ViewNames returns the supported canonical views.
func ViewNames() []string {
	return []string{ViewXY, ViewYX, ViewXZ, ViewZX, ViewYZ, ViewZY, ViewIsometric}
}

// Camera holds the view state shared by every backend.
type Camera struct {
	Position mesh.Vec3
	Target   mesh.Vec3
	Up       mesh.Vec3

	// Parallel switches from perspective to parallel projection.
	Parallel bool

	// FOV is the vertical field of view in degrees for perspective
	// projection.
	FOV float64

	// ParallelScale is the half-height of the view in world units for
	// parallel projection.
	ParallelScale float64
}

// DefaultCamera returns an isometric camera at unit distance from the
// origin.
func DefaultCamera() Camera {
	d := 1.0 / math.Sqrt(3)
	return Camera{
		Position:      mesh.Vec3{X: d, Y: d, Z: d},
		Up:            mesh.Vec3{Z: 1},
		FOV:           30,
		ParallelScale: 1,
	}
}

// Direction returns the unit vector from the camera toward the target.
func (c *Camera) Direction() mesh.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Distance returns the camera-to-target distance.
func (c *Camera) Distance() float64 {
	return c.Target.Sub(c.Position).Length()
}

// viewAxes maps each planar view to its right and up axes.
var viewAxes = map[string][2]mesh.Vec3{
	ViewXY: {{X: 1}, {Y: 1}},
	ViewYX: {{Y: 1}, {X: 1}},
	ViewXZ: {{X: 1}, {Z: 1}},
	ViewZX: {{Z: 1}, {X: 1}},
	ViewYZ: {{Y: 1}, {Z: 1}},
	ViewZY: {{Z: 1}, {Y: 1}},
}

// SetView repositions the camera to a canonical view, keeping the
// current target and distance. "iso" is accepted as shorthand for the
// isometric view.
func (c *Camera) SetView(view string) error {
	if view == "iso" {
		view = ViewIsometric
	}

	dist := c.Distance()
	if dist == 0 {
		dist = 1
	}

	if view == ViewIsometric {
		d := dist / math.Sqrt(3)
		c.Position = c.Target.Add(mesh.Vec3{X: d, Y: d, Z: d})
		c.Up = mesh.Vec3{Z: 1}
		return nil
	}

	axes, ok := viewAxes[view]
	if !ok {
		return errors.New(errors.ErrCodeInvalidView, "unknown view %q (want one of xy, yx, xz, zx, yz, zy, isometric)", view)
	}
	right, up := axes[0], axes[1]
	c.Position = c.Target.Add(right.Cross(up).Scale(dist))
	c.Up = up
	return nil
}

// Fit centers the camera on the bounds and backs off far enough to see
// everything, preserving the current view direction.
func (c *Camera) Fit(b mesh.Bounds) {
	center := b.Center()
	diag := b.Diagonal()
	if diag == 0 {
		diag = 1
	}

	dir := c.Direction()
	if dir.IsZero() {
		dir = mesh.Vec3{X: -1, Y: -1, Z: -1}.Normalize()
	}
	c.Target = center
	c.Position = center.Sub(dir.Scale(1.5 * diag))
	c.ParallelScale = diag / 2
}

// rotateAround rotates v around a unit axis by angle using the
// Rodrigues formula.
func rotateAround(v, axis mesh.Vec3, angle float64) mesh.Vec3 {
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// Orbit rotates the camera around the target: yaw about the up axis,
// pitch about the screen-right axis. Angles are radians. Pitch stops
// short of the poles to keep the up vector meaningful.
func (c *Camera) Orbit(yaw, pitch float64) {
	up := c.Up.Normalize()
	if up.IsZero() {
		up = mesh.Vec3{Z: 1}
		c.Up = up
	}

	offset := c.Position.Sub(c.Target)
	offset = rotateAround(offset, up, yaw)

	right := up.Cross(offset).Normalize()
	if !right.IsZero() {
		candidate := rotateAround(offset, right, pitch)
		// Reject pitches that would cross a pole.
		cos := candidate.Normalize().Dot(up)
		if math.Abs(cos) < 0.999 {
			offset = candidate
		}
	}
	c.Position = c.Target.Add(offset)
}

// Pan shifts both camera and target in the view plane. dx and dy are
// fractions of the view size, so a pan of 1 moves a full screen width.
func (c *Camera) Pan(dx, dy float64) {
	dir := c.Direction()
	right := dir.Cross(c.Up).Normalize()
	up := right.Cross(dir).Normalize()

	scale := c.Distance()
	if c.Parallel {
		scale = 2 * c.ParallelScale
	}
	shift := right.Scale(-dx * scale).Add(up.Scale(dy * scale))
	c.Position = c.Position.Add(shift)
	c.Target = c.Target.Add(shift)
}

// Zoom moves the camera toward the target by factor (>1 zooms in). For
// parallel projection the scale shrinks instead.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.ParallelScale /= factor
	offset := c.Position.Sub(c.Target)
	c.Position = c.Target.Add(offset.Scale(1 / factor))
}

// Reset restores the default isometric camera.
func (c *Camera) Reset() {
	*c = DefaultCamera()
}
