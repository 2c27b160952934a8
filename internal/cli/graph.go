package cli

import (
	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/graphviz"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/plotter"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string
	detailed bool
	filter   string
}

// graphCommand creates the structural diagram command.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{output: "scene-graph.svg"}

	cmd := &cobra.Command{
		Use:   "graph <file>...",
		Short: "Draw the scene structure as a node-link diagram",
		Long: `Graph loads mesh files and draws the resulting scene hierarchy with
Graphviz instead of rendering geometry. The output format follows the
extension: .svg for a rendered diagram, .dot or .gv for raw DOT.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := graphviz.New(graphviz.Options{
				Logger:   c.Logger,
				Detailed: opts.detailed,
			})
			if err != nil {
				return err
			}
			p, err := plotter.New(plotter.WithBackend(b))
			if err != nil {
				return err
			}
			defer p.Close()

			var plotOpts []backends.PlotOption
			if opts.filter != "" {
				plotOpts = append(plotOpts, backends.WithNameFilter(opts.filter))
			}
			for _, path := range args {
				m, err := meshio.Import(path)
				if err != nil {
					return err
				}
				if err := p.Plot(ctx, m, plotOpts...); err != nil {
					return err
				}
			}

			if _, err := p.Show(ctx, backends.WithScreenshot(opts.output)); err != nil {
				return err
			}
			printSuccess("Drew scene graph of %d file(s)", len(args))
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "scene-graph.svg", "output file (.svg, .dot or .gv)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include triangle and point counts in labels")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only include actors matching this regular expression")

	return cmd
}
