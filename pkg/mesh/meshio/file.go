package meshio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// Import reads a mesh file, picking the decoder from the extension.
// Supported extensions: .obj, .stl, .json.
func Import(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to open %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return ReadOBJ(f)
	case ".stl":
		return ReadSTL(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported mesh format %q (supported: .obj, .stl, .json)", ext)
	}
}

// Export writes a mesh file, picking the encoder from the extension.
// Supported extensions: .obj, .stl, .json.
func Export(m *mesh.Mesh, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj", ".stl", ".json":
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported mesh format %q (supported: .obj, .stl, .json)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create %s", path)
	}
	defer f.Close()

	switch ext {
	case ".obj":
		return WriteOBJ(m, f)
	case ".stl":
		return WriteSTL(m, f)
	default:
		return WriteJSON(m, f)
	}
}
