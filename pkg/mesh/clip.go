package mesh

// Plane is an oriented plane defined by a normal and an origin point.
type Plane struct {
	Normal Vec3
	Origin Vec3
}

// SignedDistance returns the signed distance from p to the plane.
// Positive values lie on the side the normal points toward.
func (pl Plane) SignedDistance(p Vec3) float64 {
	return pl.Normal.Normalize().Dot(p.Sub(pl.Origin))
}

// Clip cuts m against the plane and returns a new mesh containing the
// half-space the normal points away from. Triangles straddling the
// plane are split along the intersection; lines are shortened to the
// intersection point. The input mesh is not modified.
func Clip(m *Mesh, pl Plane) *Mesh {
	out := New()
	n := pl.Normal.Normalize()
	dist := func(p Vec3) float64 { return n.Dot(p.Sub(pl.Origin)) }

	for _, t := range m.Triangles {
		tri := [3]Vec3{m.Points[t[0]], m.Points[t[1]], m.Points[t[2]]}
		clipTriangle(out, tri, dist)
	}

	for _, l := range m.Lines {
		a, b := m.Points[l[0]], m.Points[l[1]]
		da, db := dist(a), dist(b)
		switch {
		case da <= 0 && db <= 0:
			ia, ib := out.AddPoint(a), out.AddPoint(b)
			out.AddLine(ia, ib)
		case da > 0 && db > 0:
			// fully clipped away
		default:
			hit := a.Lerp(b, da/(da-db))
			kept := a
			if da > 0 {
				kept = b
			}
			ia, ib := out.AddPoint(kept), out.AddPoint(hit)
			out.AddLine(ia, ib)
		}
	}
	return out
}

// clipTriangle clips one triangle against the half-space dist(p) <= 0
// using Sutherland-Hodgman polygon clipping and fans the resulting
// polygon back into triangles.
func clipTriangle(out *Mesh, tri [3]Vec3, dist func(Vec3) float64) {
	var poly []Vec3
	for i := 0; i < 3; i++ {
		cur, next := tri[i], tri[(i+1)%3]
		dc, dn := dist(cur), dist(next)
		if dc <= 0 {
			poly = append(poly, cur)
		}
		// Edge crosses the plane: emit the intersection point.
		if (dc <= 0) != (dn <= 0) {
			poly = append(poly, cur.Lerp(next, dc/(dc-dn)))
		}
	}
	if len(poly) < 3 {
		return
	}
	base := len(out.Points)
	for _, p := range poly {
		out.AddPoint(p)
	}
	for i := 1; i+1 < len(poly); i++ {
		out.AddTriangle(base, base+i, base+i+1)
	}
}
