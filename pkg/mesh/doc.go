// Package mesh provides the geometry data model for the visualization
// interface.
//
// # Overview
//
// Consumer libraries describe their objects as surface meshes: point
// clouds connected into triangles and line segments. This package
// contains:
//
//   - [Vec3]: float64 3D vector math
//   - [Mesh]: triangles + lines over a shared point set (PolyData analog)
//   - [MultiBlock]: a named collection of meshes
//   - [Bounds]: axis-aligned bounding boxes
//   - [Plane]: oriented planes and half-space clipping
//   - Primitive constructors (plane, box, sphere, cylinder, line)
//
// # Clipping
//
// [Clip] cuts a mesh against a plane, keeping the half-space the plane
// normal points away from. Triangles straddling the plane are split;
// lines are shortened to the intersection point:
//
//	clipped := mesh.Clip(m, mesh.Plane{Normal: mesh.Vec3{X: 1}, Origin: mesh.Vec3{}})
//
// File import/export lives in the [meshio] subpackage.
//
// [meshio]: github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio
package mesh
