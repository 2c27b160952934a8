package mesh

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec3
}

// ExpandPoint returns the bounds grown to contain p.
func (b Bounds) ExpandPoint(p Vec3) Bounds {
	return Bounds{Min: minVec(b.Min, p), Max: maxVec(b.Max, p)}
}

// Union returns the bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{Min: minVec(b.Min, other.Min), Max: maxVec(b.Max, other.Max)}
}

// Center returns the center point of the box.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents along each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	return b.Size().Length()
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IsEmpty reports whether the box has zero size.
func (b Bounds) IsEmpty() bool {
	return b.Min == b.Max
}
