package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/server"
	"github.com/ziadkadry99/cubeclub/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site live from the published sheets",
	Long: `Starts an HTTP server that renders every page from the current sheet
contents. The sheets are loaded in the background, so pages show a loading
state until the first round completes, and are re-read every
fetch.refresh_interval when that is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow cross-origin requests and websockets from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if allow, _ := cmd.Flags().GetBool("allow-all-origins"); allow {
		cfg.Server.AllowAllOrigins = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	store := catalog.NewStore()
	loader := newLoader(cfg, store, logger)

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, store, logger)
	site.NewHandler(store, renderer, site.HandlerOptions{
		StaticDir:       cfg.StaticDir,
		AllowAllOrigins: cfg.Server.AllowAllOrigins,
	}, logger).Register(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := loader.LoadAll(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("initial load failed", zap.Error(err))
		}
		loader.Refresh(ctx, cfg.Fetch.RefreshInterval.Std())
	}()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "cubeclub %s serving %q on http://localhost:%d\n", Version, cfg.Site.Title, cfg.Server.Port)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
