package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/httputil"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/service"
)

// scenesCommand creates the scene service management command.
func (c *CLI) scenesCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "Manage scenes on the scene service",
	}
	cmd.PersistentFlags().StringVar(&url, "url", "", "scene service URL (default from config)")

	newClient := func(withCache bool) (*service.Client, error) {
		cfg, err := c.loadConfig()
		if err != nil {
			return nil, err
		}
		base := url
		if base == "" {
			base = cfg.ServiceURL
		}
		opts := service.ClientOptions{BaseURL: base, Logger: c.Logger}
		if withCache {
			opts.Cache = renderCache()
		}
		return service.NewClient(opts)
	}

	cmd.AddCommand(c.scenesListCommand(newClient))
	cmd.AddCommand(c.scenesDeleteCommand(newClient))
	cmd.AddCommand(c.scenesRenderCommand(newClient))

	return cmd
}

type clientFactory func(withCache bool) (*service.Client, error)

// renderCache builds the local artifact cache for fetched renders.
// A nil result just disables client-side caching.
func renderCache() *httputil.Cache {
	dir, err := cacheDir()
	if err != nil {
		return nil
	}
	hc, err := httputil.NewCache(dir, 24*time.Hour)
	if err != nil {
		return nil
	}
	return hc.Namespace("renders:")
}

// scenesListCommand creates the "scenes list" subcommand.
func (c *CLI) scenesListCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			docs, err := client.ListScenes(cmd.Context())
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("No scenes stored")
				return nil
			}
			for _, doc := range docs {
				printKeyValue(doc.ID, fmt.Sprintf("%d actors, updated %s",
					doc.Actors, doc.UpdatedAt.Format("2006-01-02 15:04:05")))
			}
			return nil
		},
	}
}

// scenesDeleteCommand creates the "scenes delete" subcommand.
func (c *CLI) scenesDeleteCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			if err := client.DeleteScene(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// scenesRenderCommand creates the "scenes render" subcommand.
func (c *CLI) scenesRenderCommand(newClient clientFactory) *cobra.Command {
	var (
		output  string
		format  string
		view    string
		width   int
		height  int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Fetch a rendered artifact of a stored scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(!noCache)
			if err != nil {
				return err
			}
			data, err := client.FetchRender(cmd.Context(), args[0], service.RenderRequest{
				Format: format,
				View:   view,
				Width:  width,
				Height: height,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", output)
			}
			printSuccess("Fetched render of %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "scene.svg", "output file")
	cmd.Flags().StringVar(&format, "format", "svg", "artifact format (svg or png)")
	cmd.Flags().StringVar(&view, "view", "", "camera view (xy, yx, xz, zx, yz, zy, iso)")
	cmd.Flags().IntVar(&width, "width", 0, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "frame height in pixels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the local render cache")

	return cmd
}
