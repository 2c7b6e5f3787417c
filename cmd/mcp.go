package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	mcpserver "github.com/ziadkadry99/cubeclub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing site search and sheet listing tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store := catalog.NewStore()
		loader := newLoader(cfg, store, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := loader.LoadAll(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("initial load failed", zap.Error(err))
			}
			loader.Refresh(ctx, cfg.Fetch.RefreshInterval.Std())
		}()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("MCP server started on stdio", zap.String("version", Version))
		return mcpserver.NewServer(store, logger).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
