package mesh

// MultiBlock is an ordered, optionally named collection of meshes.
// It mirrors composite datasets in mesh toolkits: a consumer object may
// be represented by several disjoint surface pieces plotted as a unit.
type MultiBlock struct {
	blocks []*Mesh
	names  []string
}

// NewMultiBlock returns an empty multi-block collection.
func NewMultiBlock() *MultiBlock {
	return &MultiBlock{}
}

// Append adds a mesh with the given block name. Empty names are allowed.
func (mb *MultiBlock) Append(name string, m *Mesh) {
	mb.blocks = append(mb.blocks, m)
	mb.names = append(mb.names, name)
}

// Len returns the number of blocks.
func (mb *MultiBlock) Len() int { return len(mb.blocks) }

// Block returns the mesh and name at index i.
func (mb *MultiBlock) Block(i int) (*Mesh, string) {
	return mb.blocks[i], mb.names[i]
}

// Blocks returns the underlying mesh slice in insertion order.
func (mb *MultiBlock) Blocks() []*Mesh { return mb.blocks }

// Combine merges all blocks into a single mesh. The blocks are not
// modified. Used by the mesh slider widget, which clips the whole
// scene as one dataset.
func (mb *MultiBlock) Combine() *Mesh {
	out := New()
	for _, b := range mb.blocks {
		out.Merge(b)
	}
	return out
}

// Bounds returns the union of all block bounds.
func (mb *MultiBlock) Bounds() Bounds {
	if len(mb.blocks) == 0 {
		return Bounds{}
	}
	b := mb.blocks[0].Bounds()
	for _, blk := range mb.blocks[1:] {
		b = b.Union(blk.Bounds())
	}
	return b
}
