package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/site"
	"github.com/ziadkadry99/cubeclub/internal/static"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site as static files",
	Long: `Loads every sheet once and writes a self-contained static site: one page
per view, gallery and lightbox pages, a search index, and the assets of the
static directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("strict", false, "fail when any sheet could not be loaded")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	strict, _ := cmd.Flags().GetBool("strict")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.NewStore()
	if err := loadWithProgress(ctx, newLoader(cfg, store, logger)); err != nil {
		return fmt.Errorf("loading sheets: %w", err)
	}

	snap := store.Snapshot()
	if strict {
		for _, cat := range catalog.Categories {
			if len(snap.Get(cat)) == 0 {
				return fmt.Errorf("%s sheet is empty or failed to load", cat.Label())
			}
		}
	}

	generator := site.NewGenerator(renderer, site.GeneratorOptions{
		OutputDir: cfg.OutputDir,
		StaticDir: cfg.StaticDir,
		Static: static.Options{
			Include: cfg.StaticInclude,
			Exclude: cfg.StaticExclude,
		},
	}, logger)

	pageCount, err := generator.Generate(snap)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	logger.Debug("build finished", zap.Int("records", snap.Count()))
	fmt.Printf("Static site generated: %s (%d pages)\n", cfg.OutputDir, pageCount)
	return nil
}
