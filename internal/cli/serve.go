package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwarzecha/weft/internal/server"
	"github.com/mwarzecha/weft/pkg/assemble"
)

// newServeCmd creates the serve command, which runs the assembly HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assembly API over HTTP",
		Long: `Serve the assembly API over HTTP.

Endpoints:
  POST /assemble   {"sequences": [...], "k": 25, "max_contigs": 20}
  GET  /healthz

With a redis cache backend configured, multiple instances share one result
cache.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), addr, configPath, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default weft.toml if present)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func runServe(ctx context.Context, addr, configPath string, noCache bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := newCache(cfg.Cache, noCache)
	if err != nil {
		return err
	}
	runner := assemble.NewRunner(c, nil, logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(runner, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving assembly API", "addr", addr, "cache", cfg.Cache.Backend)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
