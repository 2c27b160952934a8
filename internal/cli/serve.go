package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/cache"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/service"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the scene service command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene service",
		Long: `Serve runs the HTTP scene service: clients upload serialized scenes
and fetch rendered SVG or PNG artifacts. With a Redis address in the
config the artifact cache is shared across replicas; with a MongoDB URI
scenes are persisted there instead of in memory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			store, err := newStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return err
			}
			defer store.Close(context.Background())

			artifacts, err := newServeCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts.noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			srv, err := service.NewServer(service.Options{
				Logger: c.Logger,
				Store:  store,
				Cache:  artifacts,
			})
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              opts.addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("scene service listening", "addr", opts.addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// newStore picks the scene store: MongoDB when configured, else memory.
func newStore(ctx context.Context, mongoURI, mongoDB string) (service.Store, error) {
	if mongoURI == "" {
		return service.NewMemoryStore(), nil
	}
	if mongoDB == "" {
		mongoDB = "visualizer"
	}
	return service.NewMongoStore(ctx, mongoURI, mongoDB)
}

// newServeCache picks the artifact cache: Redis when configured, else
// the local file cache.
func newServeCache(ctx context.Context, redisAddr, redisPassword string, redisDB int, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr, redisPassword, redisDB)
	}
	return newArtifactCache(false)
}
