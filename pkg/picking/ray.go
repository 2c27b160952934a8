package picking

import (
	"math"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// rayEps rejects ray-triangle intersections at grazing angles and
// behind the origin.
const rayEps = 1e-9

// Ray is a half-line in world space.
type Ray struct {
	Origin mesh.Vec3
	Dir    mesh.Vec3 // unit length
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mesh.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// RayFromScreen builds the camera ray through pixel (sx, sy) of a
// width x height viewport. It inverts the projection the render
// pipeline applies.
func RayFromScreen(cam scene.Camera, width, height int, sx, sy float64) Ray {
	forward := cam.Direction()
	if forward.IsZero() {
		forward = mesh.Vec3{Z: -1}
	}
	right := forward.Cross(cam.Up).Normalize()
	if right.IsZero() {
		right = forward.Cross(mesh.Vec3{Y: 1}).Normalize()
		if right.IsZero() {
			right = forward.Cross(mesh.Vec3{Z: 1}).Normalize()
		}
	}
	up := right.Cross(forward)

	cx := float64(width) / 2
	cy := float64(height) / 2

	if cam.Parallel {
		ps := cam.ParallelScale
		if ps <= 0 {
			ps = 1
		}
		scale := float64(height) / 2 / ps
		origin := cam.Position.
			Add(right.Scale((sx - cx) / scale)).
			Add(up.Scale((cy - sy) / scale))
		return Ray{Origin: origin, Dir: forward}
	}

	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = 30
	}
	focal := float64(height) / 2 / math.Tan(fov*math.Pi/360)
	dir := forward.
		Add(right.Scale((sx - cx) / focal)).
		Add(up.Scale((cy - sy) / focal)).
		Normalize()
	return Ray{Origin: cam.Position, Dir: dir}
}

// IntersectTriangle computes the ray parameter of the intersection
// with triangle (a, b, c) using the Moller-Trumbore algorithm. ok is
// false when the ray misses or hits behind the origin.
func IntersectTriangle(r Ray, a, b, c mesh.Vec3) (t float64, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < rayEps {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	if t < rayEps {
		return 0, false
	}
	return t, true
}

// IntersectBounds reports whether the ray enters the axis-aligned box,
// using the slab method. Used to skip whole actors cheaply.
func IntersectBounds(r Ray, b mesh.Bounds) bool {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	slabs := [3][4]float64{
		{r.Origin.X, r.Dir.X, b.Min.X, b.Max.X},
		{r.Origin.Y, r.Dir.Y, b.Min.Y, b.Max.Y},
		{r.Origin.Z, r.Dir.Z, b.Min.Z, b.Max.Z},
	}
	for _, s := range slabs {
		o, d, lo, hi := s[0], s[1], s[2], s[3]
		if math.Abs(d) < rayEps {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return tmax >= 0
}

// Hit is one ray-scene intersection.
type Hit struct {
	Actor    *scene.Actor
	Point    mesh.Vec3
	Distance float64
}

// HitTest finds the nearest visible actor intersected by the ray.
// Edge actors are not pickable by ray; they are selected through their
// parent body.
func HitTest(sc *scene.Scene, r Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, a := range sc.Visible() {
		if a.IsEdge() {
			continue
		}
		m := a.Mesh()
		if m == nil || m.IsEmpty() {
			continue
		}
		if !IntersectBounds(r, m.Bounds()) {
			continue
		}
		for _, tri := range m.Triangles {
			t, ok := IntersectTriangle(r, m.Points[tri[0]], m.Points[tri[1]], m.Points[tri[2]])
			if ok && t < best.Distance {
				best = Hit{Actor: a, Point: r.At(t), Distance: t}
				found = true
			}
		}
	}
	return best, found
}
