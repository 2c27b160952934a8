// Package scene provides the adapter layer between consumer objects and
// renderable geometry.
//
// # Overview
//
// Consumer libraries rarely plot bare meshes: they plot bodies, faces
// and design objects that carry their own identity. This package holds
// the pieces that relate those objects to what ends up on screen:
//
//   - [MeshObject]: pairs an arbitrary consumer object with its mesh
//   - [Edge]: pairs an object edge with its parent and line geometry
//   - [Scene]: the ordered actor registry backends render from
//   - [Camera]: view state shared by every backend
//   - [ClipPlane]: plane specifications accepted as plotting options
//
// # Name resolution
//
// A MeshObject takes its name from the consumer object when it
// implements [Named] or [Identified]; otherwise the name is "Unknown".
// Scene actors can be filtered by regular expression on these names.
package scene
