package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/backends/viewer"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file; format follows the extension
	width   int
	height  int
	view    string
	color   string
	opacity float64
	filter  string
	ground  bool    // draw a reference plane under the scene
	frames  int     // turntable frame count for GIF output
	fps     float64 // GIF playback rate
}

// renderCommand creates the off-screen render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{opacity: 1, frames: 36, fps: render.DefaultFPS}

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render meshes to SVG, PNG or GIF",
		Long: `Render loads one or more mesh files and renders them off-screen.
The output format follows the file extension: .svg and .png produce a
single frame, .gif produces a turntable animation orbiting the scene.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(c.Logger)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			v, err := viewer.New(viewer.Options{
				Config:      cfg,
				Logger:      c.Logger,
				Width:       opts.width,
				Height:      opts.height,
				GroundPlane: opts.ground,
			})
			if err != nil {
				return err
			}

			plotOpts := buildPlotOptions(opts.color, opts.opacity, opts.filter)
			for _, path := range args {
				m, err := meshio.Import(path)
				if err != nil {
					return err
				}
				if err := v.Plot(ctx, m, plotOpts...); err != nil {
					return err
				}
			}

			if strings.EqualFold(filepath.Ext(opts.output), ".gif") {
				if err := renderTurntable(cmd, v, opts); err != nil {
					return err
				}
			} else {
				showOpts := []backends.ShowOption{
					backends.WithOffScreen(),
					backends.WithScreenshot(opts.output),
				}
				if opts.view != "" {
					showOpts = append(showOpts, backends.WithView(opts.view))
				}
				if opts.width > 0 || opts.height > 0 {
					showOpts = append(showOpts, backends.WithSize(opts.width, opts.height))
				}
				if _, err := v.Show(ctx, showOpts...); err != nil {
					return err
				}
			}

			prog.done("Rendered " + opts.output)
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "out.svg", "output file (.svg, .png or .gif)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height in pixels")
	cmd.Flags().StringVar(&opts.view, "view", "", "camera view (xy, yx, xz, zx, yz, zy, iso)")
	cmd.Flags().StringVar(&opts.color, "color", "", "mesh color as hex")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", 1, "mesh opacity (0..1)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only render actors matching this regular expression")
	cmd.Flags().BoolVar(&opts.ground, "ground", false, "draw a ground plane under the scene")
	cmd.Flags().IntVar(&opts.frames, "frames", 36, "turntable frame count for GIF output")
	cmd.Flags().Float64Var(&opts.fps, "fps", render.DefaultFPS, "GIF playback rate")

	return cmd
}

// renderTurntable renders a full-orbit GIF of the accumulated scene.
func renderTurntable(cmd *cobra.Command, v *viewer.Viewer, opts renderOpts) error {
	sc := v.Scene()
	if sc.Len() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	if opts.view != "" {
		if err := v.SetView(opts.view); err != nil {
			return err
		}
	}
	if b := sc.Bounds(); !b.IsEmpty() {
		sc.Camera.Fit(b)
	}

	ropts := render.Options{Width: opts.width, Height: opts.height, GroundPlane: opts.ground}
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	seq := render.Turntable(sc, opts.frames)
	data, err := sink.RenderGIF(cmd.Context(), seq, ropts, opts.fps)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", opts.output)
	}
	return nil
}
