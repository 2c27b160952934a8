package cli

import (
	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
)

// convertCommand creates the mesh format conversion command.
func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a mesh between OBJ, STL and JSON",
		Long: `Convert reads a mesh file and writes it in another format. Both
formats follow the file extensions (.obj, .stl, .json).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			m, err := meshio.Import(in)
			if err != nil {
				return err
			}
			if err := meshio.Export(m, out); err != nil {
				return err
			}
			printSuccess("Converted %s (%d points, %d triangles)", in, len(m.Points), len(m.Triangles))
			printFile(out)
			return nil
		},
	}
}
