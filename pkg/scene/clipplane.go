package scene

import (
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// ClipPlane specifies a clipping plane for plotting options. The plane
// is defined by a normal and an origin point; meshes plotted with a
// clip plane keep the half-space the normal points away from.
type ClipPlane struct {
	Normal mesh.Vec3
	Origin mesh.Vec3
}

// DefaultClipPlane returns the conventional default: the YZ plane
// through the origin with the normal along +X.
func DefaultClipPlane() ClipPlane {
	return ClipPlane{Normal: mesh.Vec3{X: 1}}
}

// Validate checks that the plane normal is non-zero.
func (cp ClipPlane) Validate() error {
	if cp.Normal.IsZero() {
		return errors.New(errors.ErrCodeInvalidPlane, "clip plane normal must be non-zero")
	}
	return nil
}

// Plane converts the clip plane to its geometric plane.
func (cp ClipPlane) Plane() mesh.Plane {
	return mesh.Plane{Normal: cp.Normal, Origin: cp.Origin}
}
