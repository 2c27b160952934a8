package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/service"
)

// sendOpts holds the command-line flags for the send command.
type sendOpts struct {
	url  string
	name string
}

// sendCommand creates the scene upload command.
func (c *CLI) sendCommand() *cobra.Command {
	var opts sendOpts

	cmd := &cobra.Command{
		Use:   "send <file>...",
		Short: "Upload meshes to the scene service",
		Long: `Send uploads mesh files to a scene service, one scene per file, and
prints the scene IDs. The service URL comes from the config file or the
--url flag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if opts.url == "" {
				opts.url = cfg.ServiceURL
			}

			client, err := service.NewClient(service.ClientOptions{
				BaseURL: opts.url,
				Logger:  c.Logger,
			})
			if err != nil {
				return err
			}

			for _, path := range args {
				m, err := meshio.Import(path)
				if err != nil {
					return err
				}
				name := opts.name
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				}

				sp := newSpinnerWithContext(ctx, "Uploading "+path)
				sp.Start()
				id, err := client.SendMesh(ctx, name, m)
				if err != nil {
					sp.StopWithError(fmt.Sprintf("Failed to upload %s", path))
					return err
				}
				sp.StopWithSuccess(fmt.Sprintf("Sent %s", path))
				printKeyValue("scene", id)
			}

			printNextStep("Fetch a render", "visualizer scenes render <id> -o scene.svg")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "scene service URL (default from config)")
	cmd.Flags().StringVar(&opts.name, "name", "", "scene name (default is the file name)")

	return cmd
}
