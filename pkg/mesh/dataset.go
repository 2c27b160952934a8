package mesh

// Dataset is any plottable geometry container: a single [Mesh] or a
// [MultiBlock] collection.
type Dataset interface {
	Bounds() Bounds
}

// AsMesh flattens a dataset into a single mesh. Meshes are returned
// as-is; multi-blocks are combined. Unknown dataset types return nil.
func AsMesh(d Dataset) *Mesh {
	switch v := d.(type) {
	case *Mesh:
		return v
	case *MultiBlock:
		return v.Combine()
	default:
		return nil
	}
}
