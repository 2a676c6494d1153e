package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/handlers"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		watch     bool
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.ServerAddr = addr
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Watch = watch
			}
			if cmd.Flags().Changed("static") {
				a.cfg.StaticPath = staticDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (env PORTFOLIO_ADDR)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload data files when they change (env PORTFOLIO_WATCH)")
	cmd.Flags().StringVar(&staticDir, "static", "", "Serve client assets from this directory instead of the embedded copy")
	return cmd
}

// serve runs the server, and the content watcher when enabled, until ctx is
// cancelled or one of them fails.
func serve(ctx context.Context, a *app) error {
	cfg, logger := a.cfg, a.logger

	store, err := content.NewStore(cfg.DataPath, logger)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      handlers.SetupRoutes(cfg, store, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Watch {
		g.Go(func() error {
			return content.NewWatcher(store, logger, content.DefaultDebounce).Run(ctx)
		})
	}

	return g.Wait()
}
