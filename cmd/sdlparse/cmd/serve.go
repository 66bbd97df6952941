package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/cache"
	"github.com/Protocol-Lattice/sdl/handler"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket parse service",
	Long: `Serves POST /parse, POST /tokens and GET /ws until interrupted.

Examples:
  sdlparse serve
  sdlparse serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts := handler.Options{
		Logger:        logger,
		MaxInputBytes: cfg.Parser.MaxInputBytes,
		Engine:        cfg.Parser.Engine,
	}
	if !cfg.Cache.Disabled {
		c := cache.New[*ast.Document](cache.Config{MaxItems: cfg.Cache.MaxItems, TTL: cfg.Cache.TTL.Duration})
		defer c.Close()
		opts.Cache = c
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr()
	}
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.New(opts),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("parse service listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down parse service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
