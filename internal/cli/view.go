package cli

import (
	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/plotter"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	color      string // actor fill color (hex)
	opacity    float64
	filter     string // regex; hides non-matching actors
	view       string // canonical view to start from
	ground     bool   // draw a reference plane under the scene
	screenshot string // write the final frame here on exit
}

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{opacity: 1}

	cmd := &cobra.Command{
		Use:   "view <file>...",
		Short: "View meshes interactively in the terminal",
		Long: `View loads one or more mesh files (OBJ, STL or JSON) and opens the
interactive terminal viewer. Arrow keys orbit, +/- zooms, p enters pick
mode, and widget keys toggle rulers, measurements, views and slicing.
In test or doc mode the viewer renders off-screen instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			v, err := viewer.New(viewer.Options{
				Config:         cfg,
				Logger:         c.Logger,
				ScreenshotPath: opts.screenshot,
				GroundPlane:    opts.ground,
			})
			if err != nil {
				return err
			}
			p, err := plotter.New(plotter.WithBackend(v))
			if err != nil {
				return err
			}
			defer p.Close()

			plotOpts := buildPlotOptions(opts.color, opts.opacity, opts.filter)
			triangles := 0
			for _, path := range args {
				m, err := meshio.Import(path)
				if err != nil {
					return err
				}
				if err := p.Plot(ctx, m, plotOpts...); err != nil {
					return err
				}
				triangles += len(m.Triangles)
			}
			printStats(v.Scene().Len(), triangles, false)

			var showOpts []backends.ShowOption
			if opts.view != "" {
				showOpts = append(showOpts, backends.WithView(opts.view))
			}
			if opts.screenshot != "" {
				showOpts = append(showOpts, backends.WithScreenshot(opts.screenshot))
			}

			picked, err := p.Show(ctx, showOpts...)
			if err != nil {
				return err
			}
			if len(picked) > 0 {
				printInfo("%d object(s) picked", len(picked))
			}
			if opts.screenshot != "" {
				printFile(opts.screenshot)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "", "mesh color as hex (e.g. #D6F7D1)")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", 1, "mesh opacity (0..1)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only show actors matching this regular expression")
	cmd.Flags().StringVar(&opts.view, "view", "", "initial camera view (xy, yx, xz, zx, yz, zy, iso)")
	cmd.Flags().BoolVar(&opts.ground, "ground", false, "draw a ground plane under the scene")
	cmd.Flags().StringVarP(&opts.screenshot, "screenshot", "s", "", "write the final frame to this file on exit")

	return cmd
}

// buildPlotOptions translates shared mesh styling flags.
func buildPlotOptions(color string, opacity float64, filter string) []backends.PlotOption {
	var plotOpts []backends.PlotOption
	if color != "" {
		plotOpts = append(plotOpts, backends.WithColor(color))
	}
	if opacity != 1 {
		plotOpts = append(plotOpts, backends.WithOpacity(opacity))
	}
	if filter != "" {
		plotOpts = append(plotOpts, backends.WithNameFilter(filter))
	}
	return plotOpts
}
