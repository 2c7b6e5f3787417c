package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/config"
	"github.com/ziadkadry99/cubeclub/internal/logging"
	"github.com/ziadkadry99/cubeclub/internal/progress"
	"github.com/ziadkadry99/cubeclub/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cubeclub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// newLoader wires a throttled HTTP fetcher to a loader over store.
func newLoader(cfg *config.Config, store *catalog.Store, logger *zap.Logger) *catalog.Loader {
	fetcher := catalog.NewFetcher(catalog.FetcherOptions{
		Timeout:       cfg.Fetch.Timeout.Std(),
		RatePerSecond: cfg.Fetch.RatePerSecond,
		UserAgent:     cfg.Fetch.UserAgent,
	})
	return catalog.NewLoader(store, fetcher, cfg.Sources.URLs(), logger)
}

// loadWithProgress runs one load round, reporting each sheet on stderr.
// Failed sheets stay empty; only an aborted round is an error.
func loadWithProgress(ctx context.Context, loader *catalog.Loader) error {
	track, finish := progress.Track(progress.NewReporter(os.Stderr))
	loader.OnProgress(track)
	err := loader.LoadAll(ctx)
	finish()
	return err
}

// newRenderer builds the page renderer from the site branding.
func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	renderer, err := site.NewRenderer(site.SiteInfo{
		Title:   cfg.Site.Title,
		Tagline: cfg.Site.Tagline,
	})
	if err != nil {
		return nil, fmt.Errorf("preparing templates: %w", err)
	}
	return renderer, nil
}
