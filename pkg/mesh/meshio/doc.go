// Package meshio provides file import and export for meshes.
//
// Supported formats:
//
//   - OBJ: Wavefront geometry (v/f/l records); materials are ignored
//   - STL: ASCII and binary, triangles only
//   - JSON: lossless storage format for meshes ([WriteJSON]/[ReadJSON])
//
// The JSON format is the canonical round-trip format: import, transform
// and export produce identical results. OBJ and STL preserve geometry
// but not connectivity order (STL) or non-geometric attributes.
//
// Convenience file wrappers ([Import], [Export]) pick the format from
// the file extension.
package meshio
