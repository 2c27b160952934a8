package mesh

import "math"

// NewPlane returns a rectangular plane in the XY plane centered at the
// origin, iSize wide along X and jSize along Y, subdivided into a
// resolution x resolution quad grid. Used for the scene ground plane.
func NewPlane(iSize, jSize float64, resolution int) *Mesh {
	if resolution < 1 {
		resolution = 1
	}
	m := New()
	for j := 0; j <= resolution; j++ {
		for i := 0; i <= resolution; i++ {
			m.AddPoint(Vec3{
				X: -iSize/2 + iSize*float64(i)/float64(resolution),
				Y: -jSize/2 + jSize*float64(j)/float64(resolution),
			})
		}
	}
	stride := resolution + 1
	for j := 0; j < resolution; j++ {
		for i := 0; i < resolution; i++ {
			a := j*stride + i
			m.AddPolygon([]int{a, a + 1, a + stride + 1, a + stride})
		}
	}
	return m
}

// NewLine returns a mesh containing a single line segment.
func NewLine(start, end Vec3) *Mesh {
	m := New()
	a, b := m.AddPoint(start), m.AddPoint(end)
	m.AddLine(a, b)
	return m
}

// NewBox returns an axis-aligned box spanning the given bounds.
func NewBox(b Bounds) *Mesh {
	m := New()
	lo, hi := b.Min, b.Max
	corners := []Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z}, {X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z},
	}
	for _, c := range corners {
		m.AddPoint(c)
	}
	faces := [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, // bottom, top
		{0, 1, 5, 4}, {2, 3, 7, 6}, // front, back
		{1, 2, 6, 5}, {3, 0, 4, 7}, // right, left
	}
	for _, f := range faces {
		m.AddPolygon(f)
	}
	return m
}

// NewCube returns a cube with the given edge size centered at center.
func NewCube(center Vec3, size float64) *Mesh {
	h := size / 2
	return NewBox(Bounds{
		Min: center.Sub(Vec3{X: h, Y: h, Z: h}),
		Max: center.Add(Vec3{X: h, Y: h, Z: h}),
	})
}

// NewSphere returns a UV sphere with the given center and radius.
// Resolution controls the number of latitude bands; longitude uses
// twice as many segments.
func NewSphere(center Vec3, radius float64, resolution int) *Mesh {
	if resolution < 2 {
		resolution = 2
	}
	m := New()
	lat, lon := resolution, resolution*2
	for i := 0; i <= lat; i++ {
		theta := math.Pi * float64(i) / float64(lat)
		for j := 0; j < lon; j++ {
			phi := 2 * math.Pi * float64(j) / float64(lon)
			m.AddPoint(center.Add(Vec3{
				X: radius * math.Sin(theta) * math.Cos(phi),
				Y: radius * math.Sin(theta) * math.Sin(phi),
				Z: radius * math.Cos(theta),
			}))
		}
	}
	idx := func(i, j int) int { return i*lon + j%lon }
	for i := 0; i < lat; i++ {
		for j := 0; j < lon; j++ {
			a, b := idx(i, j), idx(i, j+1)
			c, d := idx(i+1, j+1), idx(i+1, j)
			if i > 0 {
				m.AddTriangle(a, b, c)
			}
			if i < lat-1 {
				m.AddTriangle(a, c, d)
			}
		}
	}
	return m
}

// NewCylinder returns a cylinder along the Z axis with the given
// center, radius, height and circumferential resolution.
func NewCylinder(center Vec3, radius, height float64, resolution int) *Mesh {
	if resolution < 3 {
		resolution = 3
	}
	m := New()
	h := height / 2
	for _, z := range []float64{-h, h} {
		for i := 0; i < resolution; i++ {
			phi := 2 * math.Pi * float64(i) / float64(resolution)
			m.AddPoint(center.Add(Vec3{
				X: radius * math.Cos(phi),
				Y: radius * math.Sin(phi),
				Z: z,
			}))
		}
	}
	bottomCenter := m.AddPoint(center.Add(Vec3{Z: -h}))
	topCenter := m.AddPoint(center.Add(Vec3{Z: h}))
	for i := 0; i < resolution; i++ {
		j := (i + 1) % resolution
		// side quad
		m.AddPolygon([]int{i, j, resolution + j, resolution + i})
		// caps
		m.AddTriangle(bottomCenter, j, i)
		m.AddTriangle(topCenter, resolution+i, resolution+j)
	}
	return m
}
